package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/redis"
	"Minbar/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type EngagementMetricService interface {
	SnapshotDaily(ctx context.Context, kind string, targetID uint64, likes, views int64) error
	GetTrend7Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error)
	GetTrend30Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error)
}

type engagementMetricServiceImpl struct {
	metricRepo repository.EngagementMetricRepo
}

func NewEngagementMetricService(metricRepo repository.EngagementMetricRepo) EngagementMetricService {
	return &engagementMetricServiceImpl{metricRepo: metricRepo}
}

// SnapshotDaily upserts today's snapshot row for a target.
func (s *engagementMetricServiceImpl) SnapshotDaily(ctx context.Context, kind string, targetID uint64, likes, views int64) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return s.metricRepo.SaveOrUpdateMetric(ctx, &model.EngagementMetric{
		TargetKind: kind,
		TargetID:   targetID,
		MetricDate: today,
		Likes:      likes,
		Views:      views,
		CreatedAt:  time.Now(),
	})
}

func (s *engagementMetricServiceImpl) GetTrend7Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error) {
	return s.getTrend(ctx, kind, targetID, 7, consts.Metrics7DaysKey)
}

func (s *engagementMetricServiceImpl) GetTrend30Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error) {
	return s.getTrend(ctx, kind, targetID, 30, consts.Metrics30DaysKey)
}

// getTrend serves the series cache-aside. Snapshots only change at the
// nightly sync, so the cache lives until the next UTC midnight.
func (s *engagementMetricServiceImpl) getTrend(ctx context.Context, kind string, targetID uint64, days int, keyPrefix string) ([]*dto.MetricPointDTO, error) {
	key := keyPrefix + kind + ":" + strconv.FormatUint(targetID, 10)

	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var points []*dto.MetricPointDTO
		if err := json.Unmarshal([]byte(cached), &points); err == nil {
			return points, nil
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	metrics, err := s.metricRepo.GetMetricsSince(ctx, kind, targetID, since)
	if err != nil {
		return nil, err
	}

	points := make([]*dto.MetricPointDTO, 0, len(metrics))
	for _, m := range metrics {
		points = append(points, &dto.MetricPointDTO{
			Date:  m.MetricDate.Format("2006-01-02"),
			Likes: m.Likes,
			Views: m.Views,
		})
	}

	if payload, err := json.Marshal(points); err == nil {
		_ = redis.SetWithExpiration(ctx, key, payload, untilNextUTCMidnight())
	}

	return points, nil
}

func untilNextUTCMidnight() time.Duration {
	now := time.Now().UTC()
	next := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return next.Sub(now)
}
