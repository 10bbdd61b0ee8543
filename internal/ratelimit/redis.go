package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

const (
	redisKeyPrefix   = "task-tracker:ratelimit:"
	redisPingTimeout = 2 * time.Second
	redisCallTimeout = 250 * time.Millisecond
)

// RedisLimiter shares counters between processes through Redis INCR and
// EXPIRE. When Redis fails mid-flight the request is allowed and the error
// logged.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration

	logger *logger.Logger
}

// NewRedisLimiter connects to Redis and verifies the connection with PING.
func NewRedisLimiter(ctx context.Context, cfg config.Cache, limit int, window time.Duration, log *logger.Logger) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return newRedisLimiter(client, limit, window, log), nil
}

func newRedisLimiter(client *redis.Client, limit int, window time.Duration, log *logger.Logger) *RedisLimiter {
	if window <= 0 {
		window = time.Minute
	}

	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: log,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) Decision {
	if l.limit <= 0 {
		return Decision{Allowed: true}
	}

	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	redisKey := redisKeyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, l.window)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		l.logger.Err(err).Str("key", key).Msg("redis rate limiter error")
		return Decision{Allowed: true, Limit: l.limit}
	}

	count := int(incr.Val())
	remainingTTL := ttl.Val()
	if remainingTTL <= 0 {
		remainingTTL = l.window
	}

	return Decision{
		Allowed: count <= l.limit,
		Count:   count,
		Limit:   l.limit,
		ResetAt: time.Now().Add(remainingTTL),
	}
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
