package handler

import (
	"Minbar/internal/api/dto"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArticleService struct {
	lastLimit  int
	lastOffset int
}

func (s *stubArticleService) Create(ctx context.Context, req *dto.ArticleCreateDTO, cover *dto.FilePayload) (*dto.ArticleDTO, error) {
	return &dto.ArticleDTO{}, nil
}

func (s *stubArticleService) List(ctx context.Context, limit, offset int) (*dto.ArticleListDTO, error) {
	s.lastLimit, s.lastOffset = limit, offset
	return &dto.ArticleListDTO{List: []*dto.ArticleDTO{}, Total: 0}, nil
}

func (s *stubArticleService) Get(ctx context.Context, id uint64) (*dto.ArticleDTO, error) {
	return &dto.ArticleDTO{}, nil
}

func (s *stubArticleService) Patch(ctx context.Context, id uint64, req *dto.ArticlePatchDTO) error {
	return nil
}

func (s *stubArticleService) Delete(ctx context.Context, id uint64) error { return nil }

func (s *stubArticleService) CoverKey(ctx context.Context, id uint64) (string, error) {
	return "", nil
}

func newArticleTestRouter(stub *stubArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArticleHandler(stub)

	r := gin.New()
	r.GET("/articles", h.ListArticles)
	return r
}

func TestListArticlesDefaultsToLimitTen(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, stub.lastLimit)
	assert.Equal(t, 0, stub.lastOffset)
}

func TestListArticlesHonorsLimitAndOffset(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles?limit=5&offset=20", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, stub.lastLimit)
	assert.Equal(t, 20, stub.lastOffset)
}

func TestListArticlesRejectsOversizedLimit(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles?limit=500", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.lastLimit, "service must not be reached on a bad query")
}
