package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type FatwaHandler struct {
	fatwaSvc service.FatwaService
}

func NewFatwaHandler(fatwaSvc service.FatwaService) *FatwaHandler {
	return &FatwaHandler{fatwaSvc: fatwaSvc}
}

// SubmitFatwa is the public question form.
func (s *FatwaHandler) SubmitFatwa(c *gin.Context) {
	var req dto.FatwaSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	fatwa, err := s.fatwaSvc.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fatwa)
}

// CreateFatwa is the dashboard create, already answered.
func (s *FatwaHandler) CreateFatwa(c *gin.Context) {
	var req dto.FatwaCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	fatwa, err := s.fatwaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fatwa)
}

// ListWebsiteFatwas returns answered fatwas only.
func (s *FatwaHandler) ListWebsiteFatwas(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	fatwas, err := s.fatwaSvc.ListWebsite(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwas)
}

func (s *FatwaHandler) ListDashboardFatwas(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	fatwas, err := s.fatwaSvc.ListDashboard(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwas)
}

func (s *FatwaHandler) ListPendingFatwas(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	fatwas, err := s.fatwaSvc.ListPending(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwas)
}

func (s *FatwaHandler) SearchFatwas(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	fatwas, err := s.fatwaSvc.Search(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwas)
}

func (s *FatwaHandler) LatestFatwas(c *gin.Context) {
	fatwas, err := s.fatwaSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwas)
}

func (s *FatwaHandler) GetFatwa(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	fatwa, err := s.fatwaSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, fatwa)
}

func (s *FatwaHandler) AnswerFatwa(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FatwaAnswerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.fatwaSvc.Answer(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FatwaHandler) UpdateFatwa(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FatwaPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.fatwaSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FatwaHandler) DeleteFatwa(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.fatwaSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
