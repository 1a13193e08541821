package api

import (
	"context"
	"encoding/json"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/pkg/http"
	"dashboard-api/pkg/log"
)

// GeoMetGateway fetches the GeoMet JSON weather document and enriches it with
// the air-quality reading from the companion AQHI endpoint.
type GeoMetGateway struct {
	client      *http.Client
	weatherSrc  Source
	aqhiSrc     Source
	aqhiBackoff *http.BackoffConfig
	now         func() time.Time
}

// NewGeoMetGateway builds the gateway. aqhiSrc may be the zero Source, in
// which case the air-quality merge is skipped.
func NewGeoMetGateway(client *http.Client, weatherSrc, aqhiSrc Source) *GeoMetGateway {
	return &GeoMetGateway{
		client:      client,
		weatherSrc:  weatherSrc,
		aqhiSrc:     aqhiSrc,
		aqhiBackoff: http.DefaultBackoffConfig(),
		now:         time.Now,
	}
}

// Name implements WeatherGateway.
func (g *GeoMetGateway) Name() string {
	return g.weatherSrc.Name
}

// FetchWeather implements WeatherGateway. The AQHI merge is best-effort: its
// failure is logged and the weather document is returned without air quality.
func (g *GeoMetGateway) FetchWeather(ctx context.Context) (*entity.WeatherData, error) {
	var data *entity.WeatherData

	err := fetchDocument(ctx, g.client, g.weatherSrc, func(body []byte) error {
		parsed, parseErr := ParseGeoMet(body, g.now())
		if parseErr != nil {
			return parseErr
		}
		data = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	if g.aqhiSrc.PrimaryURL != "" && data.Current.AirQuality == nil {
		if aq, aqErr := g.fetchAirQuality(ctx); aqErr != nil {
			log.Warnf("Air quality fetch failed, continuing without it: %v", aqErr)
		} else if aq != nil {
			data.Current.AirQuality = aq
		}
	}

	return data, nil
}

// fetchAirQuality hits the AQHI endpoint directly, with its own retry budget:
// unlike the weather document it has no proxy mirrors to walk, and its failure
// never escalates to the outer refresh retries.
func (g *GeoMetGateway) fetchAirQuality(ctx context.Context) (*entity.AirQuality, error) {
	var raw json.RawMessage
	_, _, _, err := g.client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.aqhiSrc.PrimaryURL).
		WithSuccessResp(&raw).
		WithBackoff(g.aqhiBackoff).
		Execute()
	if err != nil {
		return nil, err
	}
	return ParseAQHI(raw)
}
