package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ArticleRepo interface {
	Create(ctx context.Context, article *model.Article) error
	GetByID(ctx context.Context, id uint64) (*model.Article, error)
	List(ctx context.Context, limit, offset int) ([]*model.Article, int64, error)
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint64) error
	ExistsActive(ctx context.Context, id uint64) (bool, error)
}

type articleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepo {
	return &articleRepoImpl{db: db}
}

func (s *articleRepoImpl) Create(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *articleRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Preload("Writer").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *articleRepoImpl) List(ctx context.Context, limit, offset int) ([]*model.Article, int64, error) {
	var articles []*model.Article
	var total int64

	base := s.db.WithContext(ctx).Model(&model.Article{}).Where("is_deleted = ?", false)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Writer").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	return articles, total, err
}

func (s *articleRepoImpl) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(columns).Error
}

func (s *articleRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *articleRepoImpl) ExistsActive(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	return count > 0, err
}
