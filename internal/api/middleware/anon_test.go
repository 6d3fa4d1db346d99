package middleware

import (
	"Minbar/internal/api/config"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/identity"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnonRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.Cfg = &config.Config{
		Engagement: config.EngagementConfig{
			CookieName:       "anon_id",
			CookieMaxAgeDays: 365,
		},
	}
	t.Cleanup(func() { config.Cfg = nil })

	r := gin.New()
	r.Use(AnonIDMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(consts.AnonHashKey))
	})
	return r
}

func TestAnonIDIssuesCookieToNewVisitor(t *testing.T) {
	r := setupAnonRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var issued *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "anon_id" {
			issued = cookie
		}
	}
	require.NotNil(t, issued, "expected an anon_id cookie to be set")
	assert.True(t, issued.HttpOnly)
	assert.Equal(t, "/", issued.Path)
	assert.Equal(t, 365*24*60*60, issued.MaxAge)

	// The handler saw the hash of the freshly issued token.
	assert.Equal(t, identity.HashToken(issued.Value), w.Body.String())
	assert.Len(t, w.Body.String(), 64)
}

func TestAnonIDReusesExistingCookie(t *testing.T) {
	r := setupAnonRouter(t)
	token := "visitor-token-1234567890"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "anon_id", Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, identity.HashToken(token), w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, "anon_id", cookie.Name, "valid cookie must not be reissued")
	}
}

func TestAnonIDReplacesShortToken(t *testing.T) {
	r := setupAnonRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "anon_id", Value: "short"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var issued *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "anon_id" {
			issued = cookie
		}
	}
	require.NotNil(t, issued)
	assert.NotEqual(t, identity.HashToken("short"), w.Body.String())
	assert.Equal(t, identity.HashToken(issued.Value), w.Body.String())
}

func TestAnonIDNeverAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{
		Engagement: config.EngagementConfig{CookieName: ""},
	}
	t.Cleanup(func() { config.Cfg = nil })

	r := gin.New()
	r.Use(AnonIDMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(consts.AnonHashKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Body.String(), 64, "fallback identity must still be a full hash")
}
