package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

func unreachableCache(t *testing.T) *StatusCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStatusCache(rdb, time.Minute)
}

func TestSet_PendingNeverReachesRedis(t *testing.T) {
	v, err := domain.NewVerification("texto", domain.ContentText, nil)
	require.NoError(t, err)

	assert.NoError(t, unreachableCache(t).Set(context.Background(), v))
}

func TestGet_ConnectionErrorIsReported(t *testing.T) {
	got, err := unreachableCache(t).Get(context.Background(), "id")

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "get cached status")
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "parse redis url")
}
