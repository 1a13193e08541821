package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestFeelsLike(t *testing.T) {
	current := CurrentConditions{Temperature: 10}
	assert.Equal(t, 10.0, current.FeelsLike())

	current.Humidex = floatPtr(15)
	assert.Equal(t, 15.0, current.FeelsLike())

	current.WindChill = floatPtr(-5)
	assert.Equal(t, -5.0, current.FeelsLike(), "wind chill outranks humidex")
}

func TestWindDescription(t *testing.T) {
	current := CurrentConditions{}
	assert.Equal(t, "Calm", current.WindDescription())

	current.WindSpeed = intPtr(24)
	assert.Equal(t, "24 km/h", current.WindDescription())

	current.WindDirection = strPtr("SSW")
	assert.Equal(t, "SSW 24 km/h", current.WindDescription())

	current.WindSpeed = nil
	assert.Equal(t, "SSW", current.WindDescription())
}

func TestForecastForDay(t *testing.T) {
	data := WeatherData{
		Daily: []DailyForecast{
			{DayName: "Tuesday", High: intPtr(13)},
			{DayName: "Wednesday", High: intPtr(9)},
		},
	}

	found := data.ForecastForDay("tuesday")
	require.NotNil(t, found)
	assert.Equal(t, "Tuesday", found.DayName)

	assert.Nil(t, data.ForecastForDay("Sunday"))
}

func TestHasSevereWarnings(t *testing.T) {
	data := WeatherData{}
	assert.False(t, data.HasSevereWarnings())

	data.Warnings = []WeatherWarning{{Type: "Special air quality statement", Priority: PriorityLow}}
	assert.False(t, data.HasSevereWarnings())

	data.Warnings = append(data.Warnings, WeatherWarning{Type: "Snow squall warning", Priority: PriorityHigh})
	assert.True(t, data.HasSevereWarnings())
}

func TestCloneIsDeep(t *testing.T) {
	original := &WeatherData{
		Location: "Toronto",
		Current: CurrentConditions{
			Temperature: 8.6,
			Humidity:    intPtr(87),
			WindSpeed:   intPtr(24),
			AirQuality:  &AirQuality{Index: 3, Category: "Low Risk"},
		},
		Daily: []DailyForecast{
			{DayName: "Tuesday", High: intPtr(13), Low: intPtr(8), POP: intPtr(30)},
		},
		Warnings: []WeatherWarning{{Type: "Rainfall warning", Priority: PriorityHigh}},
		Sun:      &SunTimes{Sunrise: "7:01", Sunset: "18:42"},
	}

	cloned := original.Clone()
	require.NotNil(t, cloned)

	*cloned.Current.Humidity = 1
	*cloned.Daily[0].High = -40
	cloned.Warnings[0].Type = "changed"
	cloned.Sun.Sunrise = "changed"
	cloned.Current.AirQuality.Index = 10

	assert.Equal(t, 87, *original.Current.Humidity)
	assert.Equal(t, 13, *original.Daily[0].High)
	assert.Equal(t, "Rainfall warning", original.Warnings[0].Type)
	assert.Equal(t, "7:01", original.Sun.Sunrise)
	assert.Equal(t, 3, original.Current.AirQuality.Index)
}

func TestCloneNil(t *testing.T) {
	var data *WeatherData
	assert.Nil(t, data.Clone())
}
