package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expenzo/expenzo-backend/cmd/config"
)

const pingTimeout = 5 * time.Second

var rdb *redis.Client

// New connects and verifies the Redis backend. Redis only holds rate-limit
// counters here, so callers may skip initialization and run without it.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	rdb = c
	return nil
}

// Get returns the shared client, nil when Redis was never initialized.
func Get() *redis.Client {
	return rdb
}

func Close() error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
