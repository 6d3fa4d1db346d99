package repository

import (
	"Minbar/internal/model"
	"context"

	"gorm.io/gorm"
)

type QnaRepo interface {
	Create(ctx context.Context, record *model.QnaRecord) error
	List(ctx context.Context, limit, offset int) ([]*model.QnaRecord, int64, error)
}

type qnaRepoImpl struct {
	db *gorm.DB
}

func NewQnaRepo(db *gorm.DB) QnaRepo {
	return &qnaRepoImpl{db: db}
}

func (s *qnaRepoImpl) Create(ctx context.Context, record *model.QnaRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *qnaRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.QnaRecord, int64, error) {
	var records []*model.QnaRecord
	var total int64

	base := s.db.WithContext(ctx).Model(&model.QnaRecord{})
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	return records, total, err
}
