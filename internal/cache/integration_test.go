//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type RedisIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	rdb       *redis.Client
	cache     *StatusCache
}

func (s *RedisIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "6379")
	s.Require().NoError(err)

	rdb, err := NewClient(s.ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	s.Require().NoError(err)
	s.rdb = rdb
	s.cache = NewStatusCache(rdb, time.Minute)
}

func (s *RedisIntegrationSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisIntegrationSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushDB(s.ctx).Err())
}

func TestRedisIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RedisIntegrationSuite))
}

func (s *RedisIntegrationSuite) record(status domain.Status) *domain.Verification {
	v, err := domain.NewVerification("texto", domain.ContentText, nil)
	s.Require().NoError(err)
	v.Status = status
	return v
}

func (s *RedisIntegrationSuite) TestSetAndGet_Terminal() {
	v := s.record(domain.StatusFailed)

	s.Require().NoError(s.cache.Set(s.ctx, v))

	got, err := s.cache.Get(s.ctx, v.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(v.ID, got.ID)
	s.Equal(domain.StatusFailed, got.Status)

	ttl, err := s.rdb.TTL(s.ctx, keyPrefix+v.ID).Result()
	s.NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *RedisIntegrationSuite) TestSet_SkipsPending() {
	v := s.record(domain.StatusPending)

	s.Require().NoError(s.cache.Set(s.ctx, v))

	got, err := s.cache.Get(s.ctx, v.ID)
	s.NoError(err)
	s.Nil(got)
}

func (s *RedisIntegrationSuite) TestDelete() {
	v := s.record(domain.StatusCompleted)
	s.Require().NoError(s.cache.Set(s.ctx, v))

	s.Require().NoError(s.cache.Delete(s.ctx, v.ID))

	got, err := s.cache.Get(s.ctx, v.ID)
	s.NoError(err)
	s.Nil(got)
}
