package entity

import "strings"

// WeatherData is the normalized weather model shared by every upstream source.
// A value is immutable once built; each successful refresh replaces it wholesale.
type WeatherData struct {
	Location    string            `json:"location"`
	Current     CurrentConditions `json:"current"`
	Daily       []DailyForecast   `json:"daily"`
	Hourly      []HourlyForecast  `json:"hourly,omitempty"`
	Warnings    []WeatherWarning  `json:"warnings,omitempty"`
	Sun         *SunTimes         `json:"sun,omitempty"`
	LastUpdated string            `json:"lastUpdated"`
}

// CurrentConditions holds the latest observed conditions. Every field except
// temperature and condition is optional because upstream extraction may miss
// any one of them independently.
type CurrentConditions struct {
	Temperature   float64     `json:"temperature"`
	Condition     string      `json:"condition"`
	Icon          string      `json:"icon"`
	Humidity      *int        `json:"humidity,omitempty"`
	Pressure      *float64    `json:"pressure,omitempty"`
	Visibility    *float64    `json:"visibility,omitempty"`
	Dewpoint      *float64    `json:"dewpoint,omitempty"`
	WindSpeed     *int        `json:"windSpeed,omitempty"`
	WindGust      *int        `json:"windGust,omitempty"`
	WindDirection *string     `json:"windDirection,omitempty"`
	WindChill     *float64    `json:"windChill,omitempty"`
	Humidex       *float64    `json:"humidex,omitempty"`
	AirQuality    *AirQuality `json:"airQuality,omitempty"`
}

// AirQuality is the AQHI reading merged from the secondary endpoint.
type AirQuality struct {
	Index    int    `json:"index"`
	Category string `json:"category"`
}

// SunTimes holds sunrise and sunset as the upstream feed prints them.
type SunTimes struct {
	Sunrise string `json:"sunrise,omitempty"`
	Sunset  string `json:"sunset,omitempty"`
}

// WeatherWarning is an active watch or warning for the location.
type WeatherWarning struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Description string `json:"description,omitempty"`
}

// Warning priorities, highest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// FeelsLike returns the wind chill or humidex when present, otherwise the
// plain temperature.
func (c *CurrentConditions) FeelsLike() float64 {
	if c.WindChill != nil {
		return *c.WindChill
	}
	if c.Humidex != nil {
		return *c.Humidex
	}
	return c.Temperature
}

// WindDescription formats direction and speed for display, degrading to
// whichever part is known.
func (c *CurrentConditions) WindDescription() string {
	switch {
	case c.WindDirection != nil && c.WindSpeed != nil:
		return *c.WindDirection + " " + itoa(*c.WindSpeed) + " km/h"
	case c.WindDirection != nil:
		return *c.WindDirection
	case c.WindSpeed != nil:
		return itoa(*c.WindSpeed) + " km/h"
	default:
		return "Calm"
	}
}

// ForecastForDay returns the daily forecast whose day name contains the given
// name, case-insensitively. Useful for "what will bin day look like" lookups.
func (w *WeatherData) ForecastForDay(dayName string) *DailyForecast {
	needle := strings.ToLower(dayName)
	for i := range w.Daily {
		if strings.Contains(strings.ToLower(w.Daily[i].DayName), needle) {
			return &w.Daily[i]
		}
	}
	return nil
}

// HasSevereWarnings reports whether any high-priority warning is active.
func (w *WeatherData) HasSevereWarnings() bool {
	for _, warning := range w.Warnings {
		if warning.Priority == PriorityHigh {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so snapshot readers never alias the stored value.
func (w *WeatherData) Clone() *WeatherData {
	if w == nil {
		return nil
	}

	out := *w
	out.Current = *w.Current.clone()

	if w.Daily != nil {
		out.Daily = make([]DailyForecast, len(w.Daily))
		for i := range w.Daily {
			out.Daily[i] = *w.Daily[i].clone()
		}
	}
	if w.Hourly != nil {
		out.Hourly = make([]HourlyForecast, len(w.Hourly))
		for i := range w.Hourly {
			out.Hourly[i] = *w.Hourly[i].clone()
		}
	}
	if w.Warnings != nil {
		out.Warnings = append([]WeatherWarning(nil), w.Warnings...)
	}
	if w.Sun != nil {
		sun := *w.Sun
		out.Sun = &sun
	}

	return &out
}

func (c *CurrentConditions) clone() *CurrentConditions {
	out := *c
	out.Humidity = clonePtr(c.Humidity)
	out.Pressure = clonePtr(c.Pressure)
	out.Visibility = clonePtr(c.Visibility)
	out.Dewpoint = clonePtr(c.Dewpoint)
	out.WindSpeed = clonePtr(c.WindSpeed)
	out.WindGust = clonePtr(c.WindGust)
	out.WindDirection = clonePtr(c.WindDirection)
	out.WindChill = clonePtr(c.WindChill)
	out.Humidex = clonePtr(c.Humidex)
	if c.AirQuality != nil {
		aq := *c.AirQuality
		out.AirQuality = &aq
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
