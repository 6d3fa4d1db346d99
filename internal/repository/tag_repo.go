package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TagRepo interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, id uint64) (*model.Tag, error)
	List(ctx context.Context) ([]*model.Tag, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepo {
	return &tagRepoImpl{db: db}
}

func (s *tagRepoImpl) Create(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *tagRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) List(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("name ASC").
		Find(&tags).Error
	return tags, err
}

func (s *tagRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *tagRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
