// Package throttle provides request throttling for the recommendation
// endpoint, backed by Redis windowed counters with an in-memory fallback.
package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisThrottle enforces a fixed-window request limit per client using
// Redis INCR/EXPIRE counters. Redis infrastructure failures fail open:
// a broken throttle should degrade guest ordering, not break it.
type RedisThrottle struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	logger *zap.Logger
}

// NewRedisThrottle creates a Redis-backed throttle
func NewRedisThrottle(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) outbound.Throttle {
	return &RedisThrottle{
		client: client,
		cfg:    cfg,
		logger: logger.Named("redis-throttle"),
	}
}

// Allow checks whether the client may issue another request in the
// current window. Returns nil to allow, an AppError with code
// TOO_MANY_REQUESTS to deny.
func (t *RedisThrottle) Allow(ctx context.Context, clientID string) error {
	if !t.cfg.Enable || clientID == "" {
		return nil
	}

	window := t.cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	key := fmt.Sprintf("throttle:%s:%d", clientID, time.Now().UnixNano()/int64(window))

	pipe := t.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		// Fail open on infrastructure errors
		t.logger.Warn("Throttle check failed, allowing request",
			zap.String("client_id", clientID),
			zap.Error(err))
		return nil
	}

	if count := incr.Val(); count > int64(t.cfg.RequestsPerMin) {
		t.logger.Info("Request throttled",
			zap.String("client_id", clientID),
			zap.Int64("count", count),
			zap.Int("limit", t.cfg.RequestsPerMin))
		return errors.NewTooManyRequestsError(clientID)
	}

	return nil
}

// NewRedisClient creates the Redis connection used by the throttle
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr(),
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.Database,
		DialTimeout: cfg.Redis.DialTimeout,
		ReadTimeout: cfg.Redis.ReadTimeout,
		PoolSize:    cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
