package service

import (
	"Minbar/internal/api/config"
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/security"
	"Minbar/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newUserTestService(t *testing.T) (UserService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	config.Cfg = &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	}
	t.Cleanup(func() { config.Cfg = nil })

	return NewUserService(repository.NewUserRepo(db)), mock
}

func userRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hashed, err := security.HashPassword(password)
	require.NoError(t, err)

	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "is_deleted", "created_at", "updated_at"}).
		AddRow(uint64(1), "Admin", "admin@example.com", hashed, "ADMIN", false, time.Now(), time.Now())
}

func TestLoginSucceeds(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(userRow(t, "correct horse"))

	result, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin@example.com", result.User.Email)
	assert.NotEmpty(t, result.User.CreatedAt)

	claims, err := security.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(userRow(t, "correct horse"))

	_, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrCredentialsInvalid)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&gomysql.MySQLError{Number: 1062})

	_, err := svc.Create(context.Background(), &dto.UserCreateDTO{
		Name:     "Editor",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := svc.Create(context.Background(), &dto.UserCreateDTO{
		Name:     "Editor",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "EDITOR", user.Role)
}
