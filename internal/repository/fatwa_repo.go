package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FatwaRepo interface {
	Create(ctx context.Context, fatwa *model.Fatwa) error
	GetByID(ctx context.Context, id uint64) (*model.Fatwa, error)
	ListAnswered(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error)
	ListAll(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error)
	ListPending(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error)
	Search(ctx context.Context, term string, limit, offset int) ([]*model.Fatwa, int64, error)
	Latest(ctx context.Context, n int) ([]*model.Fatwa, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
	ExistsActive(ctx context.Context, id uint64) (bool, error)
}

type fatwaRepoImpl struct {
	db *gorm.DB
}

func NewFatwaRepo(db *gorm.DB) FatwaRepo {
	return &fatwaRepoImpl{db: db}
}

func (s *fatwaRepoImpl) Create(ctx context.Context, fatwa *model.Fatwa) error {
	return s.db.WithContext(ctx).Create(fatwa).Error
}

func (s *fatwaRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Fatwa, error) {
	var fatwa model.Fatwa
	err := s.db.WithContext(ctx).
		Preload("Scholar").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&fatwa).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fatwa, nil
}

func (s *fatwaRepoImpl) list(ctx context.Context, where *gorm.DB, limit, offset int) ([]*model.Fatwa, int64, error) {
	var fatwas []*model.Fatwa
	var total int64

	if err := where.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := where.
		Preload("Scholar").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&fatwas).Error
	return fatwas, total, err
}

// ListAnswered is the public website listing.
func (s *fatwaRepoImpl) ListAnswered(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error) {
	where := s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("is_deleted = ? AND status = ?", false, model.FatwaStatusAnswered)
	return s.list(ctx, where, limit, offset)
}

// ListAll is the dashboard listing, pending included.
func (s *fatwaRepoImpl) ListAll(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error) {
	where := s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("is_deleted = ?", false)
	return s.list(ctx, where, limit, offset)
}

func (s *fatwaRepoImpl) ListPending(ctx context.Context, limit, offset int) ([]*model.Fatwa, int64, error) {
	where := s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("is_deleted = ? AND status = ?", false, model.FatwaStatusPending)
	return s.list(ctx, where, limit, offset)
}

func (s *fatwaRepoImpl) Search(ctx context.Context, term string, limit, offset int) ([]*model.Fatwa, int64, error) {
	pattern := "%" + term + "%"
	where := s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("is_deleted = ? AND status = ?", false, model.FatwaStatusAnswered).
		Where("title LIKE ? OR slug LIKE ? OR question LIKE ?", pattern, pattern, pattern)
	return s.list(ctx, where, limit, offset)
}

func (s *fatwaRepoImpl) Latest(ctx context.Context, n int) ([]*model.Fatwa, error) {
	var fatwas []*model.Fatwa
	err := s.db.WithContext(ctx).
		Where("is_deleted = ? AND status = ?", false, model.FatwaStatusAnswered).
		Order("created_at DESC").
		Limit(n).
		Find(&fatwas).Error
	return fatwas, err
}

func (s *fatwaRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *fatwaRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *fatwaRepoImpl) ExistsActive(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Fatwa{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}
