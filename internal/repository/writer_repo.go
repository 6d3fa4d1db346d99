package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type WriterRepo interface {
	Create(ctx context.Context, writer *model.Writer) error
	GetByID(ctx context.Context, id uint64) (*model.Writer, error)
	List(ctx context.Context) ([]*model.Writer, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	HardDelete(ctx context.Context, id uint64) error
}

type writerRepoImpl struct {
	db *gorm.DB
}

func NewWriterRepo(db *gorm.DB) WriterRepo {
	return &writerRepoImpl{db: db}
}

func (s *writerRepoImpl) Create(ctx context.Context, writer *model.Writer) error {
	return s.db.WithContext(ctx).Create(writer).Error
}

func (s *writerRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Writer, error) {
	var writer model.Writer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&writer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &writer, nil
}

func (s *writerRepoImpl) List(ctx context.Context) ([]*model.Writer, error) {
	var writers []*model.Writer
	err := s.db.WithContext(ctx).Order("name ASC").Find(&writers).Error
	return writers, err
}

func (s *writerRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Writer{}).
		Where("id = ?", id).
		Updates(columns).Error
}

// HardDelete removes the row physically.
func (s *writerRepoImpl) HardDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Writer{}).Error
}
