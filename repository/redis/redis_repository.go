package redis

import (
	"context"
	"time"

	redisclient "github.com/expenzo/expenzo-backend/cmd/redis"
)

// Repository wraps the Redis operations the rate limiter uses. Every method
// degrades to a no-op when no client was initialized, so the service keeps
// working without Redis (rate limiting then falls back to in-process
// counters).
type Repository interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	Available() bool
}

type redisRepo struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redisRepo{}
}

// Available reports whether a live client is configured.
func (r *redisRepo) Available() bool {
	return redisclient.Get() != nil
}

// IncrWindow bumps a fixed-window counter, starting the window TTL on the
// first hit, and returns the count inside the current window.
func (r *redisRepo) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
