package repository

import (
	"Minbar/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// LatestRow is a projection used by the stats and activity feeds.
type LatestRow struct {
	ID        uint64
	Title     string
	CreatedAt time.Time
}

type StatsRepo interface {
	CountArticles(ctx context.Context) (int64, error)
	CountFatwas(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
	CountWriters(ctx context.Context) (int64, error)
	CountScholars(ctx context.Context) (int64, error)
	CountQuestions(ctx context.Context) (int64, error)

	LatestArticle(ctx context.Context) (*LatestRow, error)
	LatestFatwa(ctx context.Context) (*LatestRow, error)
	LatestBook(ctx context.Context) (*LatestRow, error)

	RecentArticles(ctx context.Context, n int) ([]*LatestRow, error)
	RecentFatwas(ctx context.Context, n int) ([]*LatestRow, error)
	RecentBooks(ctx context.Context, n int) ([]*LatestRow, error)
}

type statsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &statsRepoImpl{db: db}
}

func (s *statsRepoImpl) countActive(ctx context.Context, m interface{}) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(m).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

func (s *statsRepoImpl) CountArticles(ctx context.Context) (int64, error) {
	return s.countActive(ctx, &model.Article{})
}

func (s *statsRepoImpl) CountFatwas(ctx context.Context) (int64, error) {
	return s.countActive(ctx, &model.Fatwa{})
}

func (s *statsRepoImpl) CountBooks(ctx context.Context) (int64, error) {
	return s.countActive(ctx, &model.Book{})
}

// Writers are hard deleted, so every row counts.
func (s *statsRepoImpl) CountWriters(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Writer{}).Count(&count).Error
	return count, err
}

func (s *statsRepoImpl) CountScholars(ctx context.Context) (int64, error) {
	return s.countActive(ctx, &model.Scholar{})
}

func (s *statsRepoImpl) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (s *statsRepoImpl) latest(ctx context.Context, table, titleCol string, activeOnly bool) (*LatestRow, error) {
	var row LatestRow
	q := s.db.WithContext(ctx).Table(table).
		Select("id, " + titleCol + " AS title, created_at").
		Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_deleted = ?", false)
	}
	err := q.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *statsRepoImpl) LatestArticle(ctx context.Context) (*LatestRow, error) {
	return s.latest(ctx, "articles", "title", true)
}

func (s *statsRepoImpl) LatestFatwa(ctx context.Context) (*LatestRow, error) {
	return s.latest(ctx, "fatwas", "title", true)
}

func (s *statsRepoImpl) LatestBook(ctx context.Context) (*LatestRow, error) {
	return s.latest(ctx, "books", "title", true)
}

func (s *statsRepoImpl) recent(ctx context.Context, table, titleCol string, n int) ([]*LatestRow, error) {
	rows := make([]*LatestRow, 0, n)
	err := s.db.WithContext(ctx).Table(table).
		Select("id, "+titleCol+" AS title, created_at").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

func (s *statsRepoImpl) RecentArticles(ctx context.Context, n int) ([]*LatestRow, error) {
	return s.recent(ctx, "articles", "title", n)
}

func (s *statsRepoImpl) RecentFatwas(ctx context.Context, n int) ([]*LatestRow, error) {
	return s.recent(ctx, "fatwas", "title", n)
}

func (s *statsRepoImpl) RecentBooks(ctx context.Context, n int) ([]*LatestRow, error) {
	return s.recent(ctx, "books", "title", n)
}
