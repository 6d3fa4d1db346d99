package repository

import (
	"Minbar/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EngagementMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.EngagementMetric) error
	GetMetricsSince(ctx context.Context, kind string, targetID uint64, since time.Time) ([]*model.EngagementMetric, error)
}

type engagementMetricRepoImpl struct {
	db *gorm.DB
}

func NewEngagementMetricRepo(db *gorm.DB) EngagementMetricRepo {
	return &engagementMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric upserts the daily snapshot row for a target.
func (r *engagementMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.EngagementMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "target_kind"}, {Name: "target_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"likes",
			"views",
		}),
	}).Create(metric).Error
}

func (r *engagementMetricRepoImpl) GetMetricsSince(ctx context.Context, kind string, targetID uint64, since time.Time) ([]*model.EngagementMetric, error) {
	metrics := make([]*model.EngagementMetric, 0)
	result := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Where("metric_date >= ?", since).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
