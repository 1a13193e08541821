package api

import (
	"context"

	"golang.org/x/time/rate"

	"dashboard-api/internal/domain/entity"
)

// RateLimitedGateway wraps a WeatherGateway with a token-bucket limiter so
// scheduled and on-demand refreshes cannot hammer the upstream together.
type RateLimitedGateway struct {
	inner   WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedGateway wraps inner with the given requests-per-second rate
// and burst size.
func NewRateLimitedGateway(inner WeatherGateway, rps float64, burst int) *RateLimitedGateway {
	return &RateLimitedGateway{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name implements WeatherGateway.
func (g *RateLimitedGateway) Name() string {
	return g.inner.Name()
}

// FetchWeather implements WeatherGateway. It blocks until a token is
// available or the context is cancelled.
func (g *RateLimitedGateway) FetchWeather(ctx context.Context) (*entity.WeatherData, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return g.inner.FetchWeather(ctx)
}
