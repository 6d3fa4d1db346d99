package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type WriterHandler struct {
	writerSvc service.WriterService
}

func NewWriterHandler(writerSvc service.WriterService) *WriterHandler {
	return &WriterHandler{writerSvc: writerSvc}
}

func (s *WriterHandler) CreateWriter(c *gin.Context) {
	var req dto.WriterCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	photo, err := formFile(c, "photo")
	if err != nil {
		response.Error(c, err)
		return
	}

	writer, err := s.writerSvc.Create(c.Request.Context(), &req, photo)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, writer)
}

func (s *WriterHandler) ListWriters(c *gin.Context) {
	writers, err := s.writerSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, writers)
}

func (s *WriterHandler) GetWriter(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	writer, err := s.writerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, writer)
}

func (s *WriterHandler) UpdateWriter(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.WriterPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.writerSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *WriterHandler) DeleteWriter(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.writerSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *WriterHandler) GetWriterPhoto(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.writerSvc.PhotoKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}
