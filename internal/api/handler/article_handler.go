package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

// CreateArticle accepts a multipart form so the cover can ride along.
func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.ArticleCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	cover, err := formFile(c, "cover")
	if err != nil {
		response.Error(c, err)
		return
	}

	article, err := s.articleSvc.Create(c.Request.Context(), &req, cover)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

func (s *ArticleHandler) ListArticles(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	articles, err := s.articleSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articles)
}

func (s *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	article, err := s.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ArticlePatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.articleSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.articleSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleHandler) GetArticleCover(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.articleSvc.CoverKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}
