package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedRouter() (*gin.Engine, *test.Hook) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestID(), RealIP(), RequestLogger(logger))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, hook
}

func TestRequestLoggerRecordsRealIP(t *testing.T) {
	r, hook := loggedRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "203.0.113.7", entry.Data["ip"])
	assert.Equal(t, "/ping", entry.Data["path"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, http.StatusNoContent, entry.Data["status"])
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestRequestLoggerForwardedFor(t *testing.T) {
	r, hook := loggedRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "198.51.100.4", entry.Data["ip"])
}

func TestRequestLoggerFallsBackToRemoteAddr(t *testing.T) {
	r, hook := loggedRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "192.0.2.1", entry.Data["ip"])
}

func TestRealIPFromWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, "192.0.2.1", RealIPFrom(c))
}
