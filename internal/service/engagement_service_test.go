package service

import (
	"Minbar/internal/pkg/consts"
	redispkg "Minbar/internal/pkg/redis"
	"Minbar/internal/repository"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	gomysql "github.com/go-sql-driver/mysql"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testHash = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newEngagementTestService(t *testing.T) (EngagementService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redispkg.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redispkg.Rdb = nil })

	svc := NewEngagementService(
		repository.NewEngagementRepo(db),
		repository.NewArticleRepo(db),
		repository.NewFatwaRepo(db),
		nil,
	)
	return svc, mock
}

func expectTargetExists(mock sqlmock.Sqlmock, table string, exists bool) {
	count := int64(0)
	if exists {
		count = 1
	}
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `" + table + "`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestRecordViewCountsFirstVisit(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectExec("INSERT INTO `views`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `articles` SET `views`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `views`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	result, err := svc.RecordView(context.Background(), consts.TargetArticle, 7, testHash, "Mozilla/5.0")
	require.NoError(t, err)
	assert.True(t, result.Counted)
	assert.Equal(t, int64(1), result.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordViewSameDayDuplicateNotCounted(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectExec("INSERT INTO `views`").
		WillReturnError(&gomysql.MySQLError{Number: 1062})
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `views`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	result, err := svc.RecordView(context.Background(), consts.TargetArticle, 7, testHash, "Mozilla/5.0")
	require.NoError(t, err)
	assert.False(t, result.Counted)
	assert.Equal(t, int64(1), result.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordViewSkipsBots(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `views`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	result, err := svc.RecordView(context.Background(), consts.TargetArticle, 7, testHash, "Googlebot/2.1")
	require.NoError(t, err)
	assert.False(t, result.Counted)
	assert.Equal(t, int64(3), result.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordViewMissingUserAgentNotCounted(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `views`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	result, err := svc.RecordView(context.Background(), consts.TargetArticle, 7, testHash, "")
	require.NoError(t, err)
	assert.False(t, result.Counted)
	assert.Equal(t, int64(3), result.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordViewStorageErrorIsNotNotFound(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	dbErr := errors.New("driver: bad connection")
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnError(dbErr)

	_, err := svc.RecordView(context.Background(), consts.TargetArticle, 7, testHash, "Mozilla/5.0")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrArticleNotFound)
	assert.ErrorIs(t, err, dbErr)
}

func TestRecordViewMissingTarget(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", false)

	_, err := svc.RecordView(context.Background(), consts.TargetArticle, 404, testHash, "Mozilla/5.0")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestRecordViewRejectsUnknownKind(t *testing.T) {
	svc, _ := newEngagementTestService(t)

	_, err := svc.RecordView(context.Background(), "book", 1, testHash, "Mozilla/5.0")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestLikeFirstTime(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "fatwas", true)
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE `fatwas` SET `likes`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	state, err := svc.Like(context.Background(), consts.TargetFatwa, 9, testHash)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(1), state.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeIsIdempotent(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "fatwas", true)
	mock.ExpectExec("INSERT INTO `likes`").
		WillReturnError(&gomysql.MySQLError{Number: 1062})
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	state, err := svc.Like(context.Background(), consts.TargetFatwa, 9, testHash)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(1), state.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlikeRemovesExistingLike(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `articles` SET `likes`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	state, err := svc.Unlike(context.Background(), consts.TargetArticle, 7, testHash)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, int64(0), state.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlikeWithoutLikeIsNoop(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	state, err := svc.Unlike(context.Background(), consts.TargetArticle, 7, testHash)
	require.NoError(t, err)
	assert.False(t, state.Liked)
	assert.Equal(t, int64(0), state.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeStatus(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	expectTargetExists(mock, "articles", true)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	state, err := svc.LikeStatus(context.Background(), consts.TargetArticle, 7, testHash)
	require.NoError(t, err)
	assert.True(t, state.Liked)
	assert.Equal(t, int64(4), state.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecountRebuildsCounters(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `views`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(80))
	mock.ExpectExec("UPDATE `articles` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	likes, views, err := svc.Recount(context.Background(), consts.TargetArticle, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(12), likes)
	assert.Equal(t, int64(80), views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCountsUsesCache(t *testing.T) {
	svc, mock := newEngagementTestService(t)

	require.NoError(t, redispkg.SetWithExpiration(context.Background(),
		consts.LikeCountKey+"article:7", int64(5), cacheExpiration))
	require.NoError(t, redispkg.SetWithExpiration(context.Background(),
		consts.ViewCountKey+"article:7", int64(9), cacheExpiration))

	expectTargetExists(mock, "articles", true)

	counts, err := svc.GetCounts(context.Background(), consts.TargetArticle, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts.Likes)
	assert.Equal(t, int64(9), counts.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}
