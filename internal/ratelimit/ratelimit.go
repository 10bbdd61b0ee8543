// Package ratelimit provides fixed-window request limiters keyed by an
// arbitrary string (usually the client IP). Counters live either in process
// memory or in Redis, so several server replicas can share one budget.
package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// Decision is the outcome of a single [Limiter.Allow] call.
type Decision struct {
	Allowed bool
	// Count is the number of requests seen in the current window, this one
	// included.
	Count int
	Limit int
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// Remaining returns how many more requests fit into the current window.
func (d Decision) Remaining() int {
	if r := d.Limit - d.Count; r > 0 {
		return r
	}
	return 0
}

// Limiter counts requests per key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) Decision
	Close() error
}

// New builds the limiter described by cfg. A Redis limiter is used when
// cache.RedisAddress is set and reachable; otherwise counters are kept in
// memory.
func New(ctx context.Context, cfg config.RateLimit, cache config.Cache, log *logger.Logger) Limiter {
	if cache.RedisAddress != "" {
		limiter, err := NewRedisLimiter(ctx, cache, cfg.Requests, cfg.Window, log)
		if err == nil {
			log.Info().Str("address", cache.RedisAddress).Msg("rate limiter uses redis")
			return limiter
		}
		log.Warn().Err(err).Str("address", cache.RedisAddress).Msg("redis unavailable, rate limiter falls back to memory")
	}

	return NewMemoryLimiter(cfg.Requests, cfg.Window)
}
