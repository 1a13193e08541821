package cache

import (
	"context"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
)

// SnapshotGateway persists the latest normalized weather document so a
// restarted instance can serve data before its first upstream fetch lands.
type SnapshotGateway interface {
	// SaveSnapshot stores the document, replacing any previous one.
	SaveSnapshot(ctx context.Context, data *entity.WeatherData) error

	// LoadSnapshot returns the stored document, or nil when none exists.
	LoadSnapshot(ctx context.Context) (*entity.WeatherData, error)
}

// HealthCacheGateway reports cache connectivity for the health endpoint.
type HealthCacheGateway interface {
	Health() model.ComponentHealthStatus
}
