package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/merosman91/Boiler-Farm/internal/model"
)

// DefaultSnapshotKey is the Redis key used when none is configured.
const DefaultSnapshotKey = "boilerfarm:snapshot"

// RedisBackend persists the snapshot as one JSON value under a single key.
type RedisBackend struct {
	rdb *redis.Client
	key string
}

func NewRedisBackend(rdb *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &RedisBackend{rdb: rdb, key: key}
}

func (b *RedisBackend) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := b.rdb.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("store: load snapshot from redis: %w", err)
	}

	snap := &model.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("store: decode snapshot from redis: %w", err)
	}
	snap.Normalize()
	return snap, nil
}

func (b *RedisBackend) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := b.rdb.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: save snapshot to redis: %w", err)
	}
	return nil
}
