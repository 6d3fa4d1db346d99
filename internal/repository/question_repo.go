package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) error
	GetByID(ctx context.Context, id uint64) (*model.Question, error)
	List(ctx context.Context, limit, offset int) ([]*model.Question, int64, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	HardDelete(ctx context.Context, id uint64) error
}

type questionRepoImpl struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) QuestionRepo {
	return &questionRepoImpl{db: db}
}

func (s *questionRepoImpl) Create(ctx context.Context, question *model.Question) error {
	return s.db.WithContext(ctx).Create(question).Error
}

func (s *questionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Question, error) {
	var question model.Question
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (s *questionRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Question, int64, error) {
	var questions []*model.Question
	var total int64

	base := s.db.WithContext(ctx).Model(&model.Question{})
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&questions).Error
	return questions, total, err
}

func (s *questionRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (s *questionRepoImpl) HardDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Question{}).Error
}
