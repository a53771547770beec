package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/email/emailtest"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/service"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(context.Context) error { return s.err }

func newHealthHandler(rdb HealthChecker) *Handler {
	cfg := &config.Config{Email: config.EmailConfig{Provider: "resend"}}
	svc := service.NewContactService(&emailtest.Recorder{}, service.ContactConfig{}, logger.Nop())
	return New(svc, rdb, logger.Nop(), cfg)
}

func TestHealthWithoutRedis(t *testing.T) {
	rec := httptest.NewRecorder()
	newHealthHandler(nil).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.Equal(t, map[string]string{"email": "resend"}, resp.Services)
}

func TestHealthDegradedRedis(t *testing.T) {
	rec := httptest.NewRecorder()
	newHealthHandler(stubChecker{err: errors.New("down")}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy", resp.Services["redis"])
}

func TestReady(t *testing.T) {
	rec := httptest.NewRecorder()
	newHealthHandler(stubChecker{}).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	newHealthHandler(stubChecker{err: errors.New("down")}).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
