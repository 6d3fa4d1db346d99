package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type ScholarHandler struct {
	scholarSvc service.ScholarService
}

func NewScholarHandler(scholarSvc service.ScholarService) *ScholarHandler {
	return &ScholarHandler{scholarSvc: scholarSvc}
}

func (s *ScholarHandler) CreateScholar(c *gin.Context) {
	var req dto.ScholarCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	portrait, err := formFile(c, "portrait")
	if err != nil {
		response.Error(c, err)
		return
	}

	scholar, err := s.scholarSvc.Create(c.Request.Context(), &req, portrait)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, scholar)
}

func (s *ScholarHandler) ListScholars(c *gin.Context) {
	scholars, err := s.scholarSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, scholars)
}

func (s *ScholarHandler) GetScholar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	scholar, err := s.scholarSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, scholar)
}

func (s *ScholarHandler) UpdateScholar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ScholarPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.scholarSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ScholarHandler) DeleteScholar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.scholarSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ScholarHandler) GetScholarPortrait(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.scholarSvc.PortraitKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}
