package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ScholarRepo interface {
	Create(ctx context.Context, scholar *model.Scholar) error
	GetByID(ctx context.Context, id uint64) (*model.Scholar, error)
	List(ctx context.Context) ([]*model.Scholar, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
}

type scholarRepoImpl struct {
	db *gorm.DB
}

func NewScholarRepo(db *gorm.DB) ScholarRepo {
	return &scholarRepoImpl{db: db}
}

func (s *scholarRepoImpl) Create(ctx context.Context, scholar *model.Scholar) error {
	return s.db.WithContext(ctx).Create(scholar).Error
}

func (s *scholarRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Scholar, error) {
	var scholar model.Scholar
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&scholar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scholar, nil
}

func (s *scholarRepoImpl) List(ctx context.Context) ([]*model.Scholar, error) {
	var scholars []*model.Scholar
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&scholars).Error
	return scholars, err
}

func (s *scholarRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Scholar{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *scholarRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Scholar{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
