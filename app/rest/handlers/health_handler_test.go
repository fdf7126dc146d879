package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthCheckAlwaysHealthy(t *testing.T) {
	handler := NewHealthHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	c, rec := newHealthContext("/v1/health")
	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "user-service", resp.Service)
}

func TestReadinessCheckAllDependenciesHealthy(t *testing.T) {
	handler := NewHealthHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]DependencyCheck{
		"database":          func(context.Context) error { return nil },
		"identity_provider": func(context.Context) error { return nil },
	})

	c, rec := newHealthContext("/v1/ready")
	require.NoError(t, handler.ReadinessCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Len(t, resp.Checks, 2)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestReadinessCheckFailingDependency(t *testing.T) {
	handler := NewHealthHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]DependencyCheck{
		"database":          func(context.Context) error { return nil },
		"identity_provider": func(context.Context) error { return errors.New("connection refused") },
	})

	c, rec := newHealthContext("/v1/ready")
	require.NoError(t, handler.ReadinessCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "unhealthy", resp.Checks["identity_provider"].Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestLivenessCheck(t *testing.T) {
	handler := NewHealthHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	c, rec := newHealthContext("/v1/live")
	require.NoError(t, handler.LivenessCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
}
