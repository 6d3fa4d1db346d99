package model

import "time"

// EngagementMetric is a daily counter snapshot per target, written by
// the reconciliation job and read by the trend endpoints.
type EngagementMetric struct {
	ID         uint64    `gorm:"primaryKey"`
	TargetKind string    `gorm:"type:varchar(16);uniqueIndex:uq_metric_day,priority:1"`
	TargetID   uint64    `gorm:"uniqueIndex:uq_metric_day,priority:2"`
	MetricDate time.Time `gorm:"type:date;uniqueIndex:uq_metric_day,priority:3"`
	Likes      int64     `gorm:"not null;default:0"`
	Views      int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (EngagementMetric) TableName() string {
	return "engagement_metrics"
}
