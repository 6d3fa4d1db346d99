package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/model"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/kafka"
	"Minbar/internal/pkg/redis"
	"Minbar/internal/pkg/util"
	"Minbar/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

const cacheExpiration = 7 * 24 * time.Hour

// EngagementService tracks anonymous likes and views. Event rows are
// authoritative; the counters on the target rows are a cache kept
// current incrementally and rebuilt nightly from the dirty set.
type EngagementService interface {
	RecordView(ctx context.Context, kind string, targetID uint64, anonHash, userAgent string) (*dto.ViewResultDTO, error)
	Like(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error)
	Unlike(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error)
	LikeStatus(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error)
	GetCounts(ctx context.Context, kind string, targetID uint64) (*dto.EngagementCountsDTO, error)
	Recount(ctx context.Context, kind string, targetID uint64) (likes, views int64, err error)
}

type engagementServiceImpl struct {
	engRepo     repository.EngagementRepo
	articleRepo repository.ArticleRepo
	fatwaRepo   repository.FatwaRepo
	producer    *kafka.Producer
}

func NewEngagementService(
	engRepo repository.EngagementRepo,
	articleRepo repository.ArticleRepo,
	fatwaRepo repository.FatwaRepo,
	producer *kafka.Producer,
) EngagementService {
	return &engagementServiceImpl{
		engRepo:     engRepo,
		articleRepo: articleRepo,
		fatwaRepo:   fatwaRepo,
		producer:    producer,
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

// checkTarget verifies the target exists and is not soft deleted.
// Soft-deleted targets are indistinguishable from missing ones.
func (s *engagementServiceImpl) checkTarget(ctx context.Context, kind string, targetID uint64) error {
	switch kind {
	case consts.TargetArticle:
		ok, err := s.articleRepo.ExistsActive(ctx, targetID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrArticleNotFound
		}
	case consts.TargetFatwa:
		ok, err := s.fatwaRepo.ExistsActive(ctx, targetID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrFatwaNotFound
		}
	default:
		return ErrParamInvalid
	}
	return nil
}

func countKey(prefix, kind string, targetID uint64) string {
	return prefix + kind + ":" + strconv.FormatUint(targetID, 10)
}

func (s *engagementServiceImpl) RecordView(ctx context.Context, kind string, targetID uint64, anonHash, userAgent string) (*dto.ViewResultDTO, error) {
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	if util.IsLikelyBot(userAgent) {
		views, _ := s.getViewCount(ctx, kind, targetID)
		return &dto.ViewResultDTO{Counted: false, Views: views}, nil
	}

	view := &model.View{
		TargetKind: kind,
		TargetID:   targetID,
		AnonHash:   anonHash,
		ViewDate:   util.UTCDay(time.Now()),
		CreatedAt:  time.Now(),
	}

	counted := true
	if err := s.engRepo.CreateView(ctx, view); err != nil {
		if !isDuplicateError(err) {
			return nil, err
		}
		counted = false
	}

	if counted {
		if err := s.engRepo.IncrementViews(ctx, kind, targetID, 1); err != nil {
			log.WarnContext(ctx, "view counter increment failed, reconciliation will repair it",
				"kind", kind, "targetID", targetID, "err", err)
		}
		s.afterWrite(ctx, kind, targetID, anonHash, kafka.ActionView, consts.ViewCountKey)
	}

	views, _ := s.getViewCount(ctx, kind, targetID)
	return &dto.ViewResultDTO{Counted: counted, Views: views}, nil
}

func (s *engagementServiceImpl) Like(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	err := s.engRepo.CreateLike(ctx, &model.Like{
		TargetKind: kind,
		TargetID:   targetID,
		AnonHash:   anonHash,
		CreatedAt:  time.Now(),
	})
	if err != nil && !isDuplicateError(err) {
		return nil, err
	}

	// Duplicate insert means the visitor already liked; stay idempotent.
	if err == nil {
		if err := s.engRepo.IncrementLikes(ctx, kind, targetID, 1); err != nil {
			log.WarnContext(ctx, "like counter increment failed, reconciliation will repair it",
				"kind", kind, "targetID", targetID, "err", err)
		}
		s.afterWrite(ctx, kind, targetID, anonHash, kafka.ActionLike, consts.LikeCountKey)
	}

	likes, _ := s.getLikeCount(ctx, kind, targetID)
	return &dto.LikeStateDTO{Liked: true, Likes: likes}, nil
}

func (s *engagementServiceImpl) Unlike(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	removed, err := s.engRepo.DeleteLike(ctx, kind, targetID, anonHash)
	if err != nil {
		return nil, err
	}

	if removed > 0 {
		if err := s.engRepo.IncrementLikes(ctx, kind, targetID, -1); err != nil {
			log.WarnContext(ctx, "like counter decrement failed, reconciliation will repair it",
				"kind", kind, "targetID", targetID, "err", err)
		}
		s.afterWrite(ctx, kind, targetID, anonHash, kafka.ActionUnlike, consts.LikeCountKey)
	}

	likes, _ := s.getLikeCount(ctx, kind, targetID)
	return &dto.LikeStateDTO{Liked: false, Likes: likes}, nil
}

func (s *engagementServiceImpl) LikeStatus(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	liked, err := s.engRepo.LikeExists(ctx, kind, targetID, anonHash)
	if err != nil {
		return nil, err
	}

	likes, _ := s.getLikeCount(ctx, kind, targetID)
	return &dto.LikeStateDTO{Liked: liked, Likes: likes}, nil
}

func (s *engagementServiceImpl) GetCounts(ctx context.Context, kind string, targetID uint64) (*dto.EngagementCountsDTO, error) {
	if err := s.checkTarget(ctx, kind, targetID); err != nil {
		return nil, err
	}

	likes, err := s.getLikeCount(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	views, err := s.getViewCount(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	return &dto.EngagementCountsDTO{Likes: likes, Views: views}, nil
}

// Recount rebuilds both counters from event rows and writes them back
// onto the target row.
func (s *engagementServiceImpl) Recount(ctx context.Context, kind string, targetID uint64) (int64, int64, error) {
	likes, err := s.engRepo.CountLikes(ctx, kind, targetID)
	if err != nil {
		return 0, 0, err
	}
	views, err := s.engRepo.CountViews(ctx, kind, targetID)
	if err != nil {
		return 0, 0, err
	}

	if err := s.engRepo.UpdateCounts(ctx, kind, targetID, likes, views); err != nil {
		return 0, 0, err
	}

	_ = redis.DeleteKey(ctx,
		countKey(consts.LikeCountKey, kind, targetID),
		countKey(consts.ViewCountKey, kind, targetID))

	return likes, views, nil
}

func (s *engagementServiceImpl) getLikeCount(ctx context.Context, kind string, targetID uint64) (int64, error) {
	key := countKey(consts.LikeCountKey, kind, targetID)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.engRepo.CountLikes(ctx, kind, targetID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

func (s *engagementServiceImpl) getViewCount(ctx context.Context, kind string, targetID uint64) (int64, error) {
	key := countKey(consts.ViewCountKey, kind, targetID)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.engRepo.CountViews(ctx, kind, targetID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

// afterWrite runs the soft side effects of a counted event: cache
// invalidation, the reconciliation dirty mark, and the analytics
// event. None of them can fail the request.
func (s *engagementServiceImpl) afterWrite(ctx context.Context, kind string, targetID uint64, anonHash, action, cachePrefix string) {
	_ = redis.DeleteKey(ctx, countKey(cachePrefix, kind, targetID))
	_ = redis.SAdd(ctx, consts.EngagementDirtyKey, kind+":"+strconv.FormatUint(targetID, 10))

	s.producer.Publish(ctx, kafka.EngagementEvent{
		Kind:       kind,
		TargetID:   targetID,
		Action:     action,
		AnonHash:   anonHash,
		OccurredAt: time.Now(),
	})
}
