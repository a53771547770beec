package router

import (
	"net/http"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/handler"
	"github.com/contactrelay/contactrelay/internal/middleware"
)

// SendEmailPath is where the contact form posts submissions.
const SendEmailPath = "/api/send-email"

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	// Submission endpoint. Registered for every method: the handler answers
	// OPTIONS itself and returns 405 for anything but POST.
	sendRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Name:   "send_email",
		Limit:  cfg.RateLimit.Limit,
		Window: cfg.RateLimit.Window,
		SkipFn: middleware.SkipPreflight,
	})
	sendCORS := mw.CORS(middleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	mux.Handle(SendEmailPath, sendCORS(sendRateLimit(http.HandlerFunc(h.SendEmail))))

	// Apply middleware stack
	var handler http.Handler = mux

	// Security headers
	handler = mw.SecurityHeaders(handler)

	// Request logging
	handler = mw.Logger(handler)

	// Request ID
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
