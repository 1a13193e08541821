package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-05 is a Thursday, so "Tonight" folds into Friday.
var testNow = time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)

const geoMetFixture = `{
  "features": [
    {
      "properties": {
        "metadata": {
          "location": {"en": "Toronto"},
          "timeStamp": "2026-03-05T17:00:00Z"
        },
        "currentConditions": {
          "condition": {"en": "Mostly Cloudy"},
          "temperature": {"value": {"en": 8.6}},
          "relativeHumidity": {"value": {"en": "87"}},
          "pressure": {"value": {"en": 102.2}},
          "dewpoint": {"value": {"en": 6.6}},
          "wind": {
            "speed": {"value": {"en": 24}},
            "gust": {"value": {"en": 40}},
            "direction": {"en": "SSW"}
          }
        },
        "dailyForecast": {
          "daily": [
            {
              "periodLabel": {"en": "Thursday"},
              "textSummary": {"en": "A mix of sun and cloud."},
              "temperature": {"value": {"en": 11}},
              "precipProbability": {"value": {"en": 30}},
              "uvIndex": {"value": {"en": 4}},
              "windSummary": {"en": "Wind southwest 20 km/h"}
            },
            {
              "periodLabel": {"en": "Tonight"},
              "textSummary": {"en": "Cloudy periods."},
              "temperature": {"value": {"en": 3}},
              "precipProbability": {"value": {"en": 60}}
            },
            {
              "periodLabel": {"en": "Friday"},
              "textSummary": {"en": "Showers."},
              "temperature": {"value": {"en": 9}},
              "precipProbability": {"value": {"en": 40}}
            },
            {
              "periodLabel": {"en": "Friday night"},
              "textSummary": {"en": "Clearing."},
              "temperature": {"value": {"en": 1}}
            }
          ]
        },
        "hourlyForecast": {
          "hourly": [
            {
              "date": "2026-03-05T19:00:00Z",
              "condition": {"en": "Cloudy"},
              "temperature": {"value": {"en": 7}},
              "precipProbability": {"value": {"en": 20}},
              "wind": {"speed": {"value": {"en": 15}}, "direction": {"en": "SW"}}
            }
          ]
        },
        "riseSet": {"sunrise": "06:55", "sunset": "18:10"},
        "warnings": [
          {
            "name": {"en": "RAINFALL WARNING"},
            "type": "warning",
            "description": {"en": "Heavy rain expected."}
          }
        ]
      }
    }
  ]
}`

func TestParseGeoMetFullDocument(t *testing.T) {
	data, err := ParseGeoMet([]byte(geoMetFixture), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Toronto", data.Location)
	assert.Equal(t, "2026-03-05T17:00:00Z", data.LastUpdated)

	assert.Equal(t, 8.6, data.Current.Temperature)
	assert.Equal(t, "Mostly Cloudy", data.Current.Condition)
	assert.Equal(t, "cloudy", data.Current.Icon)
	require.NotNil(t, data.Current.Humidity)
	assert.Equal(t, 87, *data.Current.Humidity, "string-typed numbers are accepted")
	require.NotNil(t, data.Current.Pressure)
	assert.Equal(t, 102.2, *data.Current.Pressure)
	assert.Nil(t, data.Current.Visibility, "missing optional field stays nil")
	require.NotNil(t, data.Current.WindSpeed)
	assert.Equal(t, 24, *data.Current.WindSpeed)
	require.NotNil(t, data.Current.WindGust)
	assert.Equal(t, 40, *data.Current.WindGust)
	require.NotNil(t, data.Current.WindDirection)
	assert.Equal(t, "SSW", *data.Current.WindDirection)

	require.NotNil(t, data.Sun)
	assert.Equal(t, "06:55", data.Sun.Sunrise)
	assert.Equal(t, "18:10", data.Sun.Sunset)

	require.Len(t, data.Hourly, 1)
	assert.Equal(t, "2026-03-05T19:00:00Z", data.Hourly[0].Time)
	assert.Equal(t, 7.0, data.Hourly[0].Temperature)
	require.NotNil(t, data.Hourly[0].POP)
	assert.Equal(t, 20, *data.Hourly[0].POP)

	require.Len(t, data.Warnings, 1)
	assert.Equal(t, "RAINFALL WARNING", data.Warnings[0].Type)
	assert.Equal(t, "high", data.Warnings[0].Priority)
}

func TestParseGeoMetDayNightFolding(t *testing.T) {
	data, err := ParseGeoMet([]byte(geoMetFixture), testNow)
	require.NoError(t, err)

	// Thursday day period plus "Tonight" (the night into Friday) plus the
	// Friday day/night pair fold into two records.
	require.Len(t, data.Daily, 2)

	thursday := data.Daily[0]
	assert.Equal(t, "Thursday", thursday.DayName)
	require.NotNil(t, thursday.High)
	assert.Equal(t, 11, *thursday.High)
	assert.Nil(t, thursday.Low, "no Thursday night period in the feed")
	assert.Equal(t, "A mix of sun and cloud.", thursday.Summary)
	require.NotNil(t, thursday.UVIndex)
	assert.Equal(t, 4, *thursday.UVIndex)
	require.NotNil(t, thursday.WindSummary)
	assert.Equal(t, "Wind southwest 20 km/h", *thursday.WindSummary)
	require.NotNil(t, thursday.POP)
	assert.Equal(t, 30, *thursday.POP)

	friday := data.Daily[1]
	assert.Equal(t, "Friday", friday.DayName)
	require.NotNil(t, friday.High)
	assert.Equal(t, 9, *friday.High)
	require.NotNil(t, friday.Low, "tonight supplies the low for the following day")
	assert.Equal(t, 3, *friday.Low)
	require.NotNil(t, friday.POP)
	assert.Equal(t, 60, *friday.POP, "POP is the maximum across the day's periods")
	assert.Equal(t, "Showers.", friday.Summary, "day summary wins over the night-only one")
	assert.Equal(t, "rain", friday.Icon)
}

func TestParseGeoMetMalformedEnvelope(t *testing.T) {
	cases := map[string]string{
		"invalid json":       `{not json`,
		"no features":        `{"features": []}`,
		"missing features":   `{}`,
		"feature without ps": `{"features": [{}]}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseGeoMet([]byte(payload), testNow)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseGeoMetFieldDegradation(t *testing.T) {
	payload := `{"features": [{"properties": {
		"currentConditions": {"condition": {"en": "Sunny"}}
	}}]}`

	data, err := ParseGeoMet([]byte(payload), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Toronto", data.Location, "location falls back to the default")
	assert.Equal(t, "Unknown", data.LastUpdated)
	assert.Equal(t, 0.0, data.Current.Temperature, "missing temperature defaults to zero")
	require.NotNil(t, data.Current.Humidity)
	assert.Equal(t, 0, *data.Current.Humidity)
	require.NotNil(t, data.Current.WindSpeed)
	assert.Equal(t, 0, *data.Current.WindSpeed)
	assert.Nil(t, data.Current.Pressure)
	assert.Nil(t, data.Current.WindGust)
	assert.Nil(t, data.Sun)
	assert.Empty(t, data.Daily)
	assert.Empty(t, data.Hourly)
	assert.Empty(t, data.Warnings)
}

func TestParseGeoMetUnparseableNumberDegrades(t *testing.T) {
	payload := `{"features": [{"properties": {
		"currentConditions": {
			"condition": {"en": "Sunny"},
			"pressure": {"value": {"en": "not-a-number"}}
		}
	}}]}`

	data, err := ParseGeoMet([]byte(payload), testNow)
	require.NoError(t, err)
	assert.Nil(t, data.Current.Pressure)
}

func TestParseGeoMetTruncatesToSevenDays(t *testing.T) {
	days := []string{"Thursday", "Friday", "Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday again"}
	payload := `{"features": [{"properties": {"dailyForecast": {"daily": [`
	for i, day := range days {
		if i > 0 {
			payload += ","
		}
		payload += `{"periodLabel": {"en": "` + day + `"}, "textSummary": {"en": "Sunny."}, "temperature": {"value": {"en": 10}}}`
	}
	payload += `]}}}]}`

	data, err := ParseGeoMet([]byte(payload), testNow)
	require.NoError(t, err)

	require.Len(t, data.Daily, 7)
	assert.Equal(t, "Thursday", data.Daily[0].DayName, "feed order preserved")
	assert.Equal(t, "Wednesday", data.Daily[6].DayName)
}

func TestParseAQHI(t *testing.T) {
	payload := `{"features": [{"properties": {"aqhi": 3, "riskCategory": {"en": "Low Risk"}}}]}`

	aq, err := ParseAQHI([]byte(payload))
	require.NoError(t, err)
	require.NotNil(t, aq)
	assert.Equal(t, 3, aq.Index)
	assert.Equal(t, "Low Risk", aq.Category)
}

func TestParseAQHIEmptyEnvelope(t *testing.T) {
	aq, err := ParseAQHI([]byte(`{"features": []}`))
	require.NoError(t, err)
	assert.Nil(t, aq)

	aq, err = ParseAQHI([]byte(`{"features": [{"properties": {}}]}`))
	require.NoError(t, err)
	assert.Nil(t, aq)

	_, err = ParseAQHI([]byte(`{broken`))
	assert.ErrorIs(t, err, ErrParse)
}
