package service

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/repository"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newArticleTestService(t *testing.T) (ArticleService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewArticleService(repository.NewArticleRepo(db)), mock
}

func strPtr(s string) *string { return &s }

func TestPatchArticleUpdatesOnlyProvidedColumns(t *testing.T) {
	svc, mock := newArticleTestService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// Omitted fields must not appear in the UPDATE; gorm orders map
	// columns alphabetically.
	mock.ExpectExec("UPDATE `articles` SET `slug`=\\?,`title`=\\?,`updated_at`=\\? WHERE id = \\?").
		WithArgs("new-slug", "New title", sqlmock.AnyArg(), uint64(7), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.Patch(context.Background(), 7, &dto.ArticlePatchDTO{
		Title: strPtr("New title"),
		Slug:  strPtr("new-slug"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchArticleEmptyBodyRejected(t *testing.T) {
	svc, mock := newArticleTestService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.Patch(context.Background(), 7, &dto.ArticlePatchDTO{})
	assert.ErrorIs(t, err, ErrParamInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchArticleMissingTarget(t *testing.T) {
	svc, mock := newArticleTestService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := svc.Patch(context.Background(), 404, &dto.ArticlePatchDTO{
		Title: strPtr("whatever"),
	})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestPatchArticleSlugConflict(t *testing.T) {
	svc, mock := newArticleTestService(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `articles`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("UPDATE `articles` SET").
		WillReturnError(&gomysql.MySQLError{Number: 1062})

	err := svc.Patch(context.Background(), 7, &dto.ArticlePatchDTO{
		Slug: strPtr("taken-slug"),
	})
	assert.ErrorIs(t, err, ErrSlugExists)
}
