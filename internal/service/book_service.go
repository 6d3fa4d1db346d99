package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/minio"
	"Minbar/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type BookService interface {
	Create(ctx context.Context, req *dto.BookCreateDTO, cover, pdf *dto.FilePayload) (*dto.BookDTO, error)
	List(ctx context.Context, limit, offset int) (*dto.BookListDTO, error)
	Get(ctx context.Context, id uint64) (*dto.BookDTO, error)
	Patch(ctx context.Context, id uint64, req *dto.BookPatchDTO) error
	Delete(ctx context.Context, id uint64) error
	ReplaceCover(ctx context.Context, id uint64, cover *dto.FilePayload) error
	ReplacePdf(ctx context.Context, id uint64, pdf *dto.FilePayload) error
	CoverKey(ctx context.Context, id uint64) (string, error)
	PdfKey(ctx context.Context, id uint64) (string, error)
}

type bookServiceImpl struct {
	bookRepo repository.BookRepo
}

func NewBookService(bookRepo repository.BookRepo) BookService {
	return &bookServiceImpl{bookRepo: bookRepo}
}

func (s *bookServiceImpl) Create(ctx context.Context, req *dto.BookCreateDTO, cover, pdf *dto.FilePayload) (*dto.BookDTO, error) {
	book := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if cover != nil {
		key, err := uploadMedia(ctx, "books/cover", cover)
		if err != nil {
			return nil, err
		}
		book.CoverKey = key
	}
	if pdf != nil {
		key, err := uploadMedia(ctx, "books/pdf", pdf)
		if err != nil {
			return nil, err
		}
		book.PdfKey = key
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return toBookDTO(book), nil
}

func (s *bookServiceImpl) List(ctx context.Context, limit, offset int) (*dto.BookListDTO, error) {
	books, total, err := s.bookRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.BookDTO, 0, len(books))
	for _, b := range books {
		list = append(list, toBookDTO(b))
	}
	return &dto.BookListDTO{List: list, Total: total}, nil
}

func (s *bookServiceImpl) Get(ctx context.Context, id uint64) (*dto.BookDTO, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return toBookDTO(book), nil
}

func (s *bookServiceImpl) Patch(ctx context.Context, id uint64, req *dto.BookPatchDTO) error {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	columns := map[string]interface{}{}
	if req.Title != nil {
		columns["title"] = *req.Title
	}
	if req.Author != nil {
		columns["author"] = *req.Author
	}
	if req.Description != nil {
		columns["description"] = *req.Description
	}
	if len(columns) == 0 {
		return ErrParamInvalid
	}
	columns["updated_at"] = time.Now()

	return s.bookRepo.UpdateColumns(ctx, id, columns)
}

func (s *bookServiceImpl) Delete(ctx context.Context, id uint64) error {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	return s.bookRepo.SoftDelete(ctx, id)
}

// ReplaceCover uploads a new cover and swaps the key, removing the old
// object in the background.
func (s *bookServiceImpl) ReplaceCover(ctx context.Context, id uint64, cover *dto.FilePayload) error {
	return s.replaceFile(ctx, id, "books/cover", "cover_key", cover, func(b *model.Book) string {
		return b.CoverKey
	})
}

// ReplacePdf uploads a new PDF and swaps the key, removing the old
// object in the background.
func (s *bookServiceImpl) ReplacePdf(ctx context.Context, id uint64, pdf *dto.FilePayload) error {
	return s.replaceFile(ctx, id, "books/pdf", "pdf_key", pdf, func(b *model.Book) string {
		return b.PdfKey
	})
}

func (s *bookServiceImpl) replaceFile(ctx context.Context, id uint64, prefix, column string, f *dto.FilePayload, oldKey func(*model.Book) string) error {
	if f == nil {
		return ErrParamInvalid
	}
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	key, err := uploadMedia(ctx, prefix, f)
	if err != nil {
		return err
	}
	if err := s.bookRepo.UpdateColumns(ctx, id, map[string]interface{}{
		column:       key,
		"updated_at": time.Now(),
	}); err != nil {
		return err
	}

	if old := oldKey(book); old != "" {
		go func(key string) {
			if err := minio.DeleteFile(context.Background(), key); err != nil {
				log.Warn("failed to remove replaced book file", "key", key, "err", err)
			}
		}(old)
	}
	return nil
}

func (s *bookServiceImpl) CoverKey(ctx context.Context, id uint64) (string, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", ErrBookNotFound
	}
	if book.CoverKey == "" {
		return "", ErrFileNotFound
	}
	return book.CoverKey, nil
}

func (s *bookServiceImpl) PdfKey(ctx context.Context, id uint64) (string, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", ErrBookNotFound
	}
	if book.PdfKey == "" {
		return "", ErrFileNotFound
	}
	return book.PdfKey, nil
}

func toBookDTO(book *model.Book) *dto.BookDTO {
	item := &dto.BookDTO{}
	_ = copier.Copy(item, book)
	item.HasCover = book.CoverKey != ""
	item.HasPdf = book.PdfKey != ""
	item.CreatedAt = book.CreatedAt.Format("2006-01-02 15:04:05")
	item.UpdatedAt = book.UpdatedAt.Format("2006-01-02 15:04:05")
	return item
}
