package job

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/consts"
	redispkg "Minbar/internal/pkg/redis"
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recountCall struct {
	kind string
	id   uint64
}

type stubEngagementService struct {
	mu    sync.Mutex
	calls []recountCall
}

func (s *stubEngagementService) RecordView(ctx context.Context, kind string, targetID uint64, anonHash, userAgent string) (*dto.ViewResultDTO, error) {
	return nil, nil
}

func (s *stubEngagementService) Like(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	return nil, nil
}

func (s *stubEngagementService) Unlike(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	return nil, nil
}

func (s *stubEngagementService) LikeStatus(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	return nil, nil
}

func (s *stubEngagementService) GetCounts(ctx context.Context, kind string, targetID uint64) (*dto.EngagementCountsDTO, error) {
	return nil, nil
}

func (s *stubEngagementService) Recount(ctx context.Context, kind string, targetID uint64) (int64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recountCall{kind: kind, id: targetID})
	return 10, 20, nil
}

type stubMetricService struct {
	mu        sync.Mutex
	snapshots []recountCall
}

func (s *stubMetricService) SnapshotDaily(ctx context.Context, kind string, targetID uint64, likes, views int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots = append(s.snapshots, recountCall{kind: kind, id: targetID})
	return nil
}

func (s *stubMetricService) GetTrend7Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error) {
	return nil, nil
}

func (s *stubMetricService) GetTrend30Days(ctx context.Context, kind string, targetID uint64) ([]*dto.MetricPointDTO, error) {
	return nil, nil
}

func setupJobRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redispkg.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redispkg.Rdb = nil })
	return mr
}

func TestSyncJobProcessesDirtySet(t *testing.T) {
	mr := setupJobRedis(t)
	ctx := context.Background()

	require.NoError(t, redispkg.SAdd(ctx, consts.EngagementDirtyKey, "article:7", "fatwa:9"))

	engSvc := &stubEngagementService{}
	metricSvc := &stubMetricService{}
	NewEngagementSyncJob(engSvc, metricSvc).Run()

	assert.Len(t, engSvc.calls, 2)
	assert.Len(t, metricSvc.snapshots, 2)
	assert.ElementsMatch(t, []recountCall{{"article", 7}, {"fatwa", 9}}, engSvc.calls)

	// Both the dirty set and the processing set are gone afterwards.
	assert.False(t, mr.Exists(consts.EngagementDirtyKey))
	assert.False(t, mr.Exists(consts.EngagementDirtyKey+":processing"))
}

func TestSyncJobNoDirtyTargets(t *testing.T) {
	setupJobRedis(t)

	engSvc := &stubEngagementService{}
	metricSvc := &stubMetricService{}
	NewEngagementSyncJob(engSvc, metricSvc).Run()

	assert.Empty(t, engSvc.calls)
	assert.Empty(t, metricSvc.snapshots)
}

func TestSyncJobSkipsMalformedMembers(t *testing.T) {
	setupJobRedis(t)
	ctx := context.Background()

	require.NoError(t, redispkg.SAdd(ctx, consts.EngagementDirtyKey, "garbage", "article:notanumber", "article:7"))

	engSvc := &stubEngagementService{}
	metricSvc := &stubMetricService{}
	NewEngagementSyncJob(engSvc, metricSvc).Run()

	assert.Equal(t, []recountCall{{"article", 7}}, engSvc.calls)
}
