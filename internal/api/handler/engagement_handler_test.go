package handler

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngagementService struct {
	lastKind string
	lastID   uint64
	lastHash string
	viewErr  error
}

func (s *stubEngagementService) RecordView(ctx context.Context, kind string, targetID uint64, anonHash, userAgent string) (*dto.ViewResultDTO, error) {
	s.lastKind, s.lastID, s.lastHash = kind, targetID, anonHash
	if s.viewErr != nil {
		return nil, s.viewErr
	}
	return &dto.ViewResultDTO{Counted: true, Views: 11}, nil
}

func (s *stubEngagementService) Like(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	s.lastKind, s.lastID, s.lastHash = kind, targetID, anonHash
	return &dto.LikeStateDTO{Liked: true, Likes: 3}, nil
}

func (s *stubEngagementService) Unlike(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	s.lastKind, s.lastID, s.lastHash = kind, targetID, anonHash
	return &dto.LikeStateDTO{Liked: false, Likes: 2}, nil
}

func (s *stubEngagementService) LikeStatus(ctx context.Context, kind string, targetID uint64, anonHash string) (*dto.LikeStateDTO, error) {
	s.lastKind, s.lastID, s.lastHash = kind, targetID, anonHash
	return &dto.LikeStateDTO{Liked: true, Likes: 3}, nil
}

func (s *stubEngagementService) GetCounts(ctx context.Context, kind string, targetID uint64) (*dto.EngagementCountsDTO, error) {
	s.lastKind, s.lastID = kind, targetID
	return &dto.EngagementCountsDTO{Likes: 3, Views: 11}, nil
}

func (s *stubEngagementService) Recount(ctx context.Context, kind string, targetID uint64) (int64, int64, error) {
	return 0, 0, nil
}

func newEngagementTestRouter(stub *stubEngagementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEngagementHandler(stub, nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(consts.AnonHashKey, "hash-under-test")
	})
	r.POST("/articles/:id/view", h.RecordView(consts.TargetArticle))
	r.POST("/articles/:id/like", h.Like(consts.TargetArticle))
	r.DELETE("/articles/:id/like", h.Unlike(consts.TargetArticle))
	r.GET("/articles/:id/like/me", h.LikeStatus(consts.TargetArticle))
	r.GET("/articles/:id/engagement", h.GetCounts(consts.TargetArticle))
	return r
}

func TestRecordViewHandler(t *testing.T) {
	stub := &stubEngagementService{}
	r := newEngagementTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/articles/42/view", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, consts.TargetArticle, stub.lastKind)
	assert.Equal(t, uint64(42), stub.lastID)
	assert.Equal(t, "hash-under-test", stub.lastHash)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestRecordViewHandlerRejectsBadID(t *testing.T) {
	stub := &stubEngagementService{}
	r := newEngagementTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/articles/abc/view", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, stub.lastKind, "service must not be reached on a bad id")
}

func TestRecordViewHandlerMapsNotFound(t *testing.T) {
	stub := &stubEngagementService{viewErr: service.ErrArticleNotFound}
	r := newEngagementTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/articles/42/view", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeAndUnlikeHandlers(t *testing.T) {
	stub := &stubEngagementService{}
	r := newEngagementTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/articles/5/like", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    dto.LikeStateDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Liked)
	assert.Equal(t, int64(3), resp.Data.Likes)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/articles/5/like", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Liked)
	assert.Equal(t, int64(2), resp.Data.Likes)
}

func TestGetCountsHandler(t *testing.T) {
	stub := &stubEngagementService{}
	r := newEngagementTestRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles/42/engagement", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    dto.EngagementCountsDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.Likes)
	assert.Equal(t, int64(11), resp.Data.Views)
}
