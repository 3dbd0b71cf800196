package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
	"github.com/andriskumpel/combate-desinformacao/internal/metrics"
)

const keyPrefix = "verification:"

// NewClient parses a redis:// URL and returns a client. The connection is
// established lazily; Ping reports reachability.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// StatusCache keeps terminal verification records in Redis. Pending records
// are never cached since they are about to change.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *StatusCache) Get(ctx context.Context, id string) (*domain.Verification, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StatusCacheLookups.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.StatusCacheLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get cached status: %w", err)
	}

	var v domain.Verification
	if err := json.Unmarshal(data, &v); err != nil {
		metrics.StatusCacheLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode cached status: %w", err)
	}
	metrics.StatusCacheLookups.WithLabelValues("hit").Inc()
	return &v, nil
}

func (c *StatusCache) Set(ctx context.Context, v *domain.Verification) error {
	if !v.Status.Terminal() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cached status: %w", err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+v.ID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached status: %w", err)
	}
	return nil
}

func (c *StatusCache) Delete(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete cached status: %w", err)
	}
	return nil
}
