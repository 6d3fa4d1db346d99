package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BookRepo interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uint64) (*model.Book, error)
	List(ctx context.Context, limit, offset int) ([]*model.Book, int64, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
}

type bookRepoImpl struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) BookRepo {
	return &bookRepoImpl{db: db}
}

func (s *bookRepoImpl) Create(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).Create(book).Error
}

func (s *bookRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Book, error) {
	var book model.Book
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

func (s *bookRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Book, int64, error) {
	var books []*model.Book
	var total int64

	base := s.db.WithContext(ctx).Model(&model.Book{}).Where("is_deleted = ?", false)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&books).Error
	return books, total, err
}

func (s *bookRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *bookRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
