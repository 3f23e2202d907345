package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/middleware"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(logging.NewLogger(&buf, logging.Config{Level: "debug"}))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var line map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &line))

	return line
}

func newEngine(cfg middleware.GinConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Gin(cfg), middleware.PanicRecoveryGin())

	return r
}

func TestGinPropagatesRequestID(t *testing.T) {
	buf := captureLogs(t)

	var seen string

	r := newEngine(middleware.GinConfig{
		Module: "timetable",
		ModuleResolver: func(c *gin.Context) logging.Module {
			if c.FullPath() == "/push" {
				return "push"
			}

			return ""
		},
	})
	r.GET("/entries/:id", func(c *gin.Context) {
		seen = logging.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	r.GET("/push", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	incoming := uuid.Must(uuid.NewV7()).String()
	req := httptest.NewRequest(http.MethodGet, "/entries/42", nil)
	req.Header.Set("x-request-id", incoming)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, incoming, seen)
	assert.Equal(t, incoming, rec.Header().Get("x-request-id"))

	line := lastLine(t, buf)
	assert.Equal(t, "http.request.finish", line["event"])
	assert.Equal(t, "/entries/:id", line["route"])
	assert.Equal(t, "timetable", line["module"])
	assert.Equal(t, incoming, line["request_id"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/push", nil))

	line = lastLine(t, buf)
	assert.Equal(t, "push", line["module"])
	assert.NotEmpty(t, rec.Header().Get("x-request-id"))
}

func TestGinSkipPaths(t *testing.T) {
	buf := captureLogs(t)

	r := newEngine(middleware.GinConfig{SkipPaths: []string{"/ping"}})
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("x-request-id"))
	assert.Empty(t, buf.String())
}

func TestPanicRecovery(t *testing.T) {
	buf := captureLogs(t)

	r := newEngine(middleware.GinConfig{})
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil).WithContext(context.Background()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "app.panic")

	line := lastLine(t, buf)
	assert.Equal(t, "ERROR", line["severity"])
	assert.EqualValues(t, http.StatusInternalServerError, line["status"])
}
