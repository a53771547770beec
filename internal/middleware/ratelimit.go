package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitConfig holds configuration for a specific rate limit
type RateLimitConfig struct {
	// Name namespaces the counter keys of this limit.
	Name   string
	Limit  int
	Window time.Duration
	// KeyFn derives the counter key; nil keys on the client IP.
	KeyFn  func(*http.Request) string
	// SkipFn exempts matching requests from counting, e.g. CORS preflights.
	SkipFn func(*http.Request) bool
}

// RateLimit creates a fixed-window rate limiting middleware backed by the
// shared Counter. Counter failures let the request through.
func (m *Middleware) RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.cfg.RateLimit.Enabled || m.counter == nil {
				next.ServeHTTP(w, r)
				return
			}
			if cfg.SkipFn != nil && cfg.SkipFn(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			keyFn := cfg.KeyFn
			if keyFn == nil {
				keyFn = m.ClientIP
			}
			key := fmt.Sprintf("ratelimit:%s:%s", cfg.Name, keyFn(r))

			count, ttl, err := m.counter.Hit(ctx, key, cfg.Window)
			if err != nil {
				m.log.Error().Err(err).Str("key", key).Msg("rate limit counter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			resetTime := time.Now().Add(ttl).Unix()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, cfg.Limit-int(count))))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

			if int(count) > cfg.Limit {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				m.log.Warn().
					Str("request_id", GetRequestID(ctx)).
					Str("key", key).
					Int64("count", count).
					Msg("rate limit exceeded")
				writeJSONError(w, http.StatusTooManyRequests, "Demasiadas solicitudes, intenta de nuevo más tarde")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SkipPreflight exempts OPTIONS requests from rate limiting
func SkipPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions
}
