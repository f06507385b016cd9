package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the shared go-redis client. One client serves both
// optional roles: the redis snapshot backend and the async job queues.
// Connectivity is proven with a ping up front so a bad REDIS_URL fails at
// startup, not on the first snapshot save.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("infra: parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("infra: redis ping: %w", err)
	}

	return rdb, nil
}
