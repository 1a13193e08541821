package weather

import (
	"context"
	"errors"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
)

// ErrNoData is returned while nothing has been loaded yet.
var ErrNoData = errors.New("no weather data loaded")

// ErrDayNotFound is returned when no forecast matches the requested day.
var ErrDayNotFound = errors.New("no forecast for requested day")

type UseCase interface {
	// GetSnapshot returns the current data and pipeline status.
	GetSnapshot() model.WeatherSnapshot

	// GetStatus returns the pipeline status alone.
	GetStatus() model.WeatherStatus

	// GetForecastForDay finds the daily forecast whose day name matches.
	GetForecastForDay(day string) (*entity.DailyForecast, error)

	// Refresh runs the full fetch pipeline synchronously and commits the
	// outcome to the store.
	Refresh(ctx context.Context, requestID string) error

	// TriggerRefresh requests an asynchronous refresh, through the command
	// queue when one is configured and in-process otherwise.
	TriggerRefresh(requestID string, reason string) error

	// GetHistory returns a page of refresh records, newest first.
	GetHistory(page int, size int) (*model.Page[entity.RefreshRecord], error)

	// SeedFromCache pre-loads the store with the last cached snapshot so a
	// restarted instance serves stale data before its first fetch.
	SeedFromCache(ctx context.Context)

	// WatchSnapshots persists committed snapshots to the cache until the
	// context is cancelled. Run it in its own goroutine.
	WatchSnapshots(ctx context.Context)
}
