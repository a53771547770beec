package handler

import (
	"context"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/logger"
	"github.com/contactrelay/contactrelay/internal/model"
)

// Relayer turns a contact submission into a delivered email.
type Relayer interface {
	Relay(ctx context.Context, s model.ContactSubmission) (string, error)
}

// HealthChecker is a dependency that can report its health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds all HTTP handlers
type Handler struct {
	contactSvc Relayer
	rdb        HealthChecker
	log        *logger.Logger
	cfg        *config.Config
}

// New creates a new Handler instance. rdb may be nil when Redis is not in use.
func New(contactSvc Relayer, rdb HealthChecker, log *logger.Logger, cfg *config.Config) *Handler {
	return &Handler{
		contactSvc: contactSvc,
		rdb:        rdb,
		log:        log.WithComponent("handler"),
		cfg:        cfg,
	}
}
