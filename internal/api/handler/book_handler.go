package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/response"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

func (s *BookHandler) CreateBook(c *gin.Context) {
	var req dto.BookCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	cover, err := formFile(c, "cover")
	if err != nil {
		response.Error(c, err)
		return
	}
	pdf, err := formFile(c, "pdf")
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := s.bookSvc.Create(c.Request.Context(), &req, cover, pdf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, book)
}

func (s *BookHandler) ListBooks(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	limit, offset := pageWindow(&page)

	books, err := s.bookSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

func (s *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := s.bookSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, book)
}

func (s *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BookPatchDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.bookSvc.Patch(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.bookSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BookHandler) ReplaceBookCover(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cover, err := formFile(c, "cover")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.bookSvc.ReplaceCover(c.Request.Context(), id, cover); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BookHandler) ReplaceBookPdf(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := formFile(c, "pdf")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.bookSvc.ReplacePdf(c.Request.Context(), id, pdf); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *BookHandler) GetBookCover(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.bookSvc.CoverKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}

func (s *BookHandler) GetBookPdf(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.bookSvc.PdfKey(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	streamObject(c, key)
}
