package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
	"dashboard-api/pkg/redis"
)

const healthCheckTimeout = 5 * time.Second

type RedisSnapshotGateway struct {
	cache *redis.Cache
	key   string
}

var _ SnapshotGateway = (*RedisSnapshotGateway)(nil)
var _ HealthCacheGateway = (*RedisSnapshotGateway)(nil)

func NewRedisSnapshotGateway(cache *redis.Cache, key string) *RedisSnapshotGateway {
	if key == "" {
		key = "weather:snapshot"
	}
	return &RedisSnapshotGateway{cache: cache, key: key}
}

func (gateway *RedisSnapshotGateway) SaveSnapshot(ctx context.Context, data *entity.WeatherData) error {
	if err := gateway.cache.SetJSON(ctx, gateway.key, data); err != nil {
		return fmt.Errorf("failed to save weather snapshot: %w", err)
	}
	return nil
}

func (gateway *RedisSnapshotGateway) LoadSnapshot(ctx context.Context) (*entity.WeatherData, error) {
	var data entity.WeatherData
	err := gateway.cache.GetJSON(ctx, gateway.key, &data)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weather snapshot: %w", err)
	}
	return &data, nil
}

func (gateway *RedisSnapshotGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	if err := gateway.cache.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
