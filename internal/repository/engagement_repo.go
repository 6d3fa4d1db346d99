package repository

import (
	"Minbar/internal/model"
	"Minbar/internal/pkg/consts"
	"context"

	"gorm.io/gorm"
)

type EngagementRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, kind string, targetID uint64, anonHash string) (int64, error)
	LikeExists(ctx context.Context, kind string, targetID uint64, anonHash string) (bool, error)

	CreateView(ctx context.Context, view *model.View) error

	CountLikes(ctx context.Context, kind string, targetID uint64) (int64, error)
	CountViews(ctx context.Context, kind string, targetID uint64) (int64, error)

	IncrementLikes(ctx context.Context, kind string, targetID uint64, delta int64) error
	IncrementViews(ctx context.Context, kind string, targetID uint64, delta int64) error
	UpdateCounts(ctx context.Context, kind string, targetID uint64, likes, views int64) error
}

type engagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &engagementRepoImpl{db: db}
}

// targetTable maps an engagement kind to the table holding its
// denormalized counters.
func targetTable(kind string) string {
	switch kind {
	case consts.TargetFatwa:
		return "fatwas"
	default:
		return "articles"
	}
}

func (s *engagementRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *engagementRepoImpl) DeleteLike(ctx context.Context, kind string, targetID uint64, anonHash string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ? AND anon_hash = ?", kind, targetID, anonHash).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (s *engagementRepoImpl) LikeExists(ctx context.Context, kind string, targetID uint64, anonHash string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ? AND anon_hash = ?", kind, targetID, anonHash).
		Count(&count).Error
	return count > 0, err
}

func (s *engagementRepoImpl) CreateView(ctx context.Context, view *model.View) error {
	return s.db.WithContext(ctx).Create(view).Error
}

func (s *engagementRepoImpl) CountLikes(ctx context.Context, kind string, targetID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error
	return count, err
}

func (s *engagementRepoImpl) CountViews(ctx context.Context, kind string, targetID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.View{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error
	return count, err
}

// IncrementLikes adjusts the cached counter on the target row. A
// negative delta is floored at zero so replayed unlikes can never
// drive the column negative.
func (s *engagementRepoImpl) IncrementLikes(ctx context.Context, kind string, targetID uint64, delta int64) error {
	return s.db.WithContext(ctx).Table(targetTable(kind)).
		Where("id = ?", targetID).
		UpdateColumn("likes", gorm.Expr("GREATEST(CAST(likes AS SIGNED) + ?, 0)", delta)).Error
}

func (s *engagementRepoImpl) IncrementViews(ctx context.Context, kind string, targetID uint64, delta int64) error {
	return s.db.WithContext(ctx).Table(targetTable(kind)).
		Where("id = ?", targetID).
		UpdateColumn("views", gorm.Expr("GREATEST(CAST(views AS SIGNED) + ?, 0)", delta)).Error
}

// UpdateCounts overwrites both counters from recomputed event totals.
func (s *engagementRepoImpl) UpdateCounts(ctx context.Context, kind string, targetID uint64, likes, views int64) error {
	return s.db.WithContext(ctx).Table(targetTable(kind)).
		Where("id = ?", targetID).
		UpdateColumns(map[string]interface{}{
			"likes": likes,
			"views": views,
		}).Error
}
