package response

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/service"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var res dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := newTestContext()

	Success(c, map[string]any{"likes": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.NotNil(t, res.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	c, w := newTestContext()

	Created(c, map[string]any{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrParamInvalid, http.StatusBadRequest},
		{service.ErrArticleNotFound, http.StatusNotFound},
		{service.ErrFatwaNotFound, http.StatusNotFound},
		{service.ErrEmailExists, http.StatusConflict},
		{service.ErrCredentialsInvalid, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		c, w := newTestContext()
		Error(c, tc.err)

		assert.Equal(t, tc.status, w.Code, "err=%v", tc.err)
		res := decode(t, w)
		assert.False(t, res.Success)
		assert.Equal(t, tc.err.Error(), res.Error)
	}
}

func TestErrorHidesUnclassifiedDetail(t *testing.T) {
	c, w := newTestContext()

	Error(c, errors.New("dial tcp 10.0.0.5:3306: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decode(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, service.UnExpectedError.Error(), res.Error)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}
