package middleware

import (
	"context"
	"net/netip"
	"time"

	"github.com/contactrelay/contactrelay/internal/config"
	"github.com/contactrelay/contactrelay/internal/logger"
)

// Counter is a shared fixed-window counter store, usually Redis.
// Hit records one request against key and returns the count in the current
// window and the time until it resets.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Middleware holds all HTTP middleware
type Middleware struct {
	counter Counter
	log     *logger.Logger
	cfg     *config.Config
	trusted []netip.Prefix
}

// New creates a new Middleware instance. counter may be nil when rate
// limiting is disabled.
func New(counter Counter, log *logger.Logger, cfg *config.Config) *Middleware {
	trusted, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		// config.Load rejects these; a hand-built config falls back to
		// trusting no proxy.
		log.Warn().Err(err).Msg("ignoring trusted proxies")
		trusted = nil
	}
	return &Middleware{
		counter: counter,
		log:     log,
		cfg:     cfg,
		trusted: trusted,
	}
}
