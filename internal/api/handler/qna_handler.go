package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type QnaHandler struct {
	qnaSvc service.QnaService
}

func NewQnaHandler(qnaSvc service.QnaService) *QnaHandler {
	return &QnaHandler{qnaSvc: qnaSvc}
}

func (s *QnaHandler) AddRecord(c *gin.Context) {
	var req dto.QnaRecordCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	record, err := s.qnaSvc.Add(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

func (s *QnaHandler) ListRecords(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	records, err := s.qnaSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}
