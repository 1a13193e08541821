package api

import (
	"context"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/pkg/http"
)

// CityPageGateway fetches and normalizes the city page Atom feed. It is the
// fallback source when the GeoMet endpoint is unavailable.
type CityPageGateway struct {
	client *http.Client
	src    Source
	now    func() time.Time
}

// NewCityPageGateway builds the gateway.
func NewCityPageGateway(client *http.Client, src Source) *CityPageGateway {
	return &CityPageGateway{client: client, src: src, now: time.Now}
}

// Name implements WeatherGateway.
func (g *CityPageGateway) Name() string {
	return g.src.Name
}

// FetchWeather implements WeatherGateway.
func (g *CityPageGateway) FetchWeather(ctx context.Context) (*entity.WeatherData, error) {
	var data *entity.WeatherData

	err := fetchDocument(ctx, g.client, g.src, func(body []byte) error {
		parsed, parseErr := ParseCityPage(body, g.now())
		if parseErr != nil {
			return parseErr
		}
		data = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
