package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/email/emailtest"
	"github.com/contactrelay/contactrelay/internal/handler"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/middleware"
	"github.com/contactrelay/contactrelay/internal/service"
)

func newTestRouter(t *testing.T, sent *emailtest.Recorder) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Environment: "production",
		Email:       config.EmailConfig{Provider: "log"},
		RateLimit:   config.RateLimitConfig{Limit: 5, Window: time.Minute},
	}
	log := logger.Nop()
	svc := service.NewContactService(sent, service.ContactConfig{
		SenderName:    "Formulario Web",
		SenderAddress: "onboarding@resend.dev",
		Recipient:     config.PlaceholderRecipient,
	}, log)

	return New(handler.New(svc, nil, log, cfg), middleware.New(nil, log, cfg), cfg)
}

func TestSendEmailEndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "valid submission",
			body:     `{"nombre":"Ana","email":"ana@example.com","mensaje":"Hola"}`,
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Email enviado correctamente","id":"re_e2e"}`,
		},
		{
			name:     "invalid email",
			body:     `{"nombre":"Ana","email":"not-an-email","mensaje":"Hola"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"error":"Email inválido"}`,
		},
		{
			name:     "missing nombre",
			body:     `{"email":"ana@example.com","mensaje":"Hola"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"error":"Faltan campos requeridos (nombre, email, mensaje)"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, &emailtest.Recorder{ID: "re_e2e"})

			req := httptest.NewRequest(http.MethodPost, SendEmailPath, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestSendEmailRoutesEveryMethod(t *testing.T) {
	r := newTestRouter(t, &emailtest.Recorder{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, SendEmailPath, strings.NewReader("garbage")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))

	for _, method := range []string{http.MethodGet, http.MethodPut} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, SendEmailPath, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t, &emailtest.Recorder{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
