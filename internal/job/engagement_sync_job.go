package job

import (
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/logger"
	"Minbar/internal/pkg/redis"
	"Minbar/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// EngagementSyncJob rebuilds the like/view counters of every target
// touched since the last run and snapshots them into the daily metric
// table. The dirty set is renamed to a processing key first so events
// arriving mid-run land in a fresh set.
type EngagementSyncJob struct {
	engagementService service.EngagementService
	metricService     service.EngagementMetricService
}

func NewEngagementSyncJob(
	engagementService service.EngagementService,
	metricService service.EngagementMetricService,
) *EngagementSyncJob {
	return &EngagementSyncJob{
		engagementService: engagementService,
		metricService:     metricService,
	}
}

func (s *EngagementSyncJob) Run() {
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, "job-engagement-"+uuid.NewString())
	log.InfoContext(ctx, "Engagement sync job started")

	processingKey := consts.EngagementDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.EngagementDirtyKey, processingKey); err != nil {
		// Rename fails when the dirty set is empty; nothing to do.
		log.InfoContext(ctx, "No dirty engagement targets", "err", err)
		return
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "Failed to read processing set", "err", err)
		return
	}

	synced, failed := 0, 0
	for _, member := range members {
		kind, targetID, ok := parseMember(member)
		if !ok {
			log.WarnContext(ctx, "Skipping malformed dirty member", "member", member)
			continue
		}

		likes, views, err := s.engagementService.Recount(ctx, kind, targetID)
		if err != nil {
			log.ErrorContext(ctx, "Recount failed", "kind", kind, "targetID", targetID, "err", err)
			failed++
			continue
		}
		if err := s.metricService.SnapshotDaily(ctx, kind, targetID, likes, views); err != nil {
			log.ErrorContext(ctx, "Snapshot failed", "kind", kind, "targetID", targetID, "err", err)
			failed++
			continue
		}
		synced++
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.WarnContext(ctx, "Failed to drop processing set", "err", err)
	}

	log.InfoContext(ctx, "Engagement sync job finished", "synced", synced, "failed", failed)
}

func parseMember(member string) (string, uint64, bool) {
	kind, idStr, found := strings.Cut(member, ":")
	if !found {
		return "", 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return kind, id, true
}
