package api

import (
	"context"

	"dashboard-api/internal/domain/entity"
)

// WeatherGateway fetches and normalizes weather data from one upstream source.
type WeatherGateway interface {
	// Name identifies the source for logging and telemetry.
	Name() string

	// FetchWeather performs one attempt round against the source: the primary
	// endpoint first, then each configured relay. It returns the normalized
	// model or the last endpoint failure.
	FetchWeather(ctx context.Context) (*entity.WeatherData, error)
}
