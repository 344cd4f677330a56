package cache

import (
	"context"
	"fmt"

	"aqi-dashboard/internal/domain/model"
	"aqi-dashboard/pkg/redis"
)

// SnapshotCacheName is the cache name used for TTL lookup in the Redis client
// configuration.
const SnapshotCacheName = "aqi_snapshots"

const snapshotCacheKey = "latest"

// redisSnapshotStore keeps the latest snapshot in Redis so multiple instances
// share one cache. The entry TTL is managed through the client's cache
// configuration; an expired entry reads as a miss.
type redisSnapshotStore struct {
	cache   *redis.Cache
	checker *redis.HealthChecker
}

// NewRedisSnapshotStore creates a Redis-backed snapshot store.
func NewRedisSnapshotStore(client *redis.Client) SnapshotStore {
	cacheOpts := redis.NewCacheOptions().WithCacheName(SnapshotCacheName)

	return &redisSnapshotStore{
		cache:   redis.NewCache(client, cacheOpts),
		checker: redis.NewHealthChecker(client),
	}
}

func (s *redisSnapshotStore) Get(ctx context.Context) (*model.DashboardSnapshot, error) {
	var snapshot model.DashboardSnapshot
	found, err := s.cache.Get(ctx, snapshotCacheKey, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &snapshot, nil
}

func (s *redisSnapshotStore) Put(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	if err := s.cache.Set(ctx, snapshotCacheKey, snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot in redis: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Health() model.ComponentHealthStatus {
	check := s.checker.HealthCheck()

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	details := map[string]string{"backend": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: details,
	}
}
