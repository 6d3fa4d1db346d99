package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/redis"
	"Minbar/internal/repository"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const statsCacheExpiration = 60 * time.Second

type StatsService interface {
	Totals(ctx context.Context) (*dto.StatsTotalsDTO, error)
	Latest(ctx context.Context) ([]*dto.LatestItemDTO, error)
	RecentActivity(ctx context.Context, limit int) ([]*dto.ActivityItemDTO, error)
}

type statsServiceImpl struct {
	statsRepo repository.StatsRepo
}

func NewStatsService(statsRepo repository.StatsRepo) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

// Totals fans out one count per table. Dashboards poll this, so the
// result sits in redis for a minute.
func (s *statsServiceImpl) Totals(ctx context.Context) (*dto.StatsTotalsDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.StatsTotalsKey); err == nil && cached != "" {
		totals := &dto.StatsTotalsDTO{}
		if err := json.Unmarshal([]byte(cached), totals); err == nil {
			return totals, nil
		}
	}

	totals := &dto.StatsTotalsDTO{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { totals.Articles, err = s.statsRepo.CountArticles(gctx); return })
	g.Go(func() (err error) { totals.Fatwas, err = s.statsRepo.CountFatwas(gctx); return })
	g.Go(func() (err error) { totals.Books, err = s.statsRepo.CountBooks(gctx); return })
	g.Go(func() (err error) { totals.Writers, err = s.statsRepo.CountWriters(gctx); return })
	g.Go(func() (err error) { totals.Scholars, err = s.statsRepo.CountScholars(gctx); return })
	g.Go(func() (err error) { totals.Questions, err = s.statsRepo.CountQuestions(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(totals); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.StatsTotalsKey, payload, statsCacheExpiration)
	}
	return totals, nil
}

// Latest returns the newest row of each publishable table. Tables with
// no rows yet are simply absent from the result.
func (s *statsServiceImpl) Latest(ctx context.Context) ([]*dto.LatestItemDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.StatsLatestKey); err == nil && cached != "" {
		var items []*dto.LatestItemDTO
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	type fetch struct {
		kind string
		fn   func(context.Context) (*repository.LatestRow, error)
	}
	fetches := []fetch{
		{consts.TargetArticle, s.statsRepo.LatestArticle},
		{consts.TargetFatwa, s.statsRepo.LatestFatwa},
		{"book", s.statsRepo.LatestBook},
	}

	items := make([]*dto.LatestItemDTO, 0, len(fetches))
	for _, f := range fetches {
		row, err := f.fn(ctx)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		items = append(items, &dto.LatestItemDTO{
			Kind:      f.kind,
			ID:        row.ID,
			Title:     row.Title,
			CreatedAt: row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.StatsLatestKey, payload, statsCacheExpiration)
	}
	return items, nil
}

// RecentActivity merges the newest articles, fatwas and books into one
// feed sorted by creation time.
func (s *statsServiceImpl) RecentActivity(ctx context.Context, limit int) ([]*dto.ActivityItemDTO, error) {
	key := consts.ActivityRecentKey + strconv.Itoa(limit)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var items []*dto.ActivityItemDTO
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	var articles, fatwas, books []*repository.LatestRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { articles, err = s.statsRepo.RecentArticles(gctx, limit); return })
	g.Go(func() (err error) { fatwas, err = s.statsRepo.RecentFatwas(gctx, limit); return })
	g.Go(func() (err error) { books, err = s.statsRepo.RecentBooks(gctx, limit); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	type tagged struct {
		kind string
		row  *repository.LatestRow
	}
	merged := make([]tagged, 0, len(articles)+len(fatwas)+len(books))
	for _, r := range articles {
		merged = append(merged, tagged{consts.TargetArticle, r})
	}
	for _, r := range fatwas {
		merged = append(merged, tagged{consts.TargetFatwa, r})
	}
	for _, r := range books {
		merged = append(merged, tagged{"book", r})
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].row.CreatedAt.After(merged[j].row.CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	items := make([]*dto.ActivityItemDTO, 0, len(merged))
	for _, m := range merged {
		items = append(items, &dto.ActivityItemDTO{
			Kind:      m.kind,
			ID:        m.row.ID,
			Title:     m.row.Title,
			CreatedAt: m.row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = redis.SetWithExpiration(ctx, key, payload, statsCacheExpiration)
	}
	return items, nil
}
