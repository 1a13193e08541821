package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "dashboard-api/pkg/http"
)

func newGeoMetTestGateway(weatherURL, aqhiURL string) *GeoMetGateway {
	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	gateway := NewGeoMetGateway(client,
		Source{Name: "geomet", PrimaryURL: weatherURL, Timeout: 5 * time.Second},
		Source{Name: "aqhi", PrimaryURL: aqhiURL, Timeout: 5 * time.Second})
	gateway.now = func() time.Time { return testNow }
	// Single AQHI attempt keeps the failure-tolerance test from sleeping
	// through backoff delays.
	gateway.aqhiBackoff = nil
	return gateway
}

func TestGeoMetGatewayMergesAirQuality(t *testing.T) {
	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geoMetFixture))
	}))
	defer weather.Close()

	aqhi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features": [{"properties": {"aqhi": 4, "riskCategory": {"en": "Moderate Risk"}}}]}`))
	}))
	defer aqhi.Close()

	gateway := newGeoMetTestGateway(weather.URL, aqhi.URL)

	data, err := gateway.FetchWeather(context.Background())
	require.NoError(t, err)
	require.NotNil(t, data.Current.AirQuality)
	assert.Equal(t, 4, data.Current.AirQuality.Index)
	assert.Equal(t, "Moderate Risk", data.Current.AirQuality.Category)
}

func TestGeoMetGatewayAirQualityFailureIsTolerated(t *testing.T) {
	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(geoMetFixture))
	}))
	defer weather.Close()

	aqhi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer aqhi.Close()

	gateway := newGeoMetTestGateway(weather.URL, aqhi.URL)

	data, err := gateway.FetchWeather(context.Background())
	require.NoError(t, err, "AQHI failure never fails the weather fetch")
	assert.Nil(t, data.Current.AirQuality)
	assert.Equal(t, "Toronto", data.Location)
}

func TestGeoMetGatewayWeatherFailurePropagates(t *testing.T) {
	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer weather.Close()

	gateway := newGeoMetTestGateway(weather.URL, "")

	_, err := gateway.FetchWeather(context.Background())
	assert.ErrorIs(t, err, ErrHTTPStatus)
}

func TestCityPageGatewayFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(cityPageFixture))
	}))
	defer server.Close()

	client := pkghttp.NewHttpClient("", pkghttp.ClientOptions{})
	gateway := NewCityPageGateway(client, Source{Name: "citypage", PrimaryURL: server.URL, Timeout: 5 * time.Second})
	gateway.now = func() time.Time { return testNow }

	data, err := gateway.FetchWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Toronto", data.Location)
	assert.Equal(t, "citypage", gateway.Name())
	require.Len(t, data.Daily, 3)
}
