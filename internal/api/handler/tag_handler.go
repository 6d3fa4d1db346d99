package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

func (s *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	cover, err := formFile(c, "cover")
	if err != nil {
		response.Error(c, err)
		return
	}

	tag, err := s.tagSvc.Create(c.Request.Context(), &req, cover)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tag)
}

func (s *TagHandler) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

func (s *TagHandler) GetTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tag, err := s.tagSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tag)
}

func (s *TagHandler) UpdateTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.TagPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.tagSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.tagSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TagHandler) GetTagCover(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.tagSvc.CoverKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}
