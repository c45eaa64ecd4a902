package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/workdesk/workdesk/internal/config"
)

// SnapshotKey holds the serialized dashboard snapshot.
const SnapshotKey = "dashboard:snapshot"

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

// RegisterOpenTelemetryPlugin traces every command through the global
// tracer provider. Call it after tracing is set up.
func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

// SnapshotCache keeps one serialized dashboard snapshot under SnapshotKey.
type SnapshotCache struct {
	rdb *redis.Client
	key string
}

func NewSnapshotCache(rdb *redis.Client) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, key: SnapshotKey}
}

// Get returns nil, nil on a miss.
func (c *SnapshotCache) Get(ctx context.Context) ([]byte, error) {
	b, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (c *SnapshotCache) Set(ctx context.Context, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key, data, ttl).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
