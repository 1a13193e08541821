package entity

import "strconv"

// DailyForecast is one day of the normalized forecast. A high-only or
// low-only entry from a two-periods-per-day feed leaves the other bound nil.
type DailyForecast struct {
	DayName     string  `json:"dayName"`
	High        *int    `json:"high,omitempty"`
	Low         *int    `json:"low,omitempty"`
	Summary     string  `json:"summary"`
	POP         *int    `json:"pop,omitempty"`
	Icon        string  `json:"icon"`
	UVIndex     *int    `json:"uvIndex,omitempty"`
	WindChill   *string `json:"windChill,omitempty"`
	WindSummary *string `json:"windSummary,omitempty"`
}

// HourlyForecast is one hour of the normalized forecast.
type HourlyForecast struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	Condition     string  `json:"condition"`
	POP           *int    `json:"pop,omitempty"`
	WindSpeed     *int    `json:"windSpeed,omitempty"`
	WindDirection *string `json:"windDirection,omitempty"`
	Icon          string  `json:"icon"`
}

// TempRangeDisplay formats the high/low pair the way the dashboard cards
// print it, e.g. "12 - 6 ºC". Missing bounds render as "N/A".
func (d *DailyForecast) TempRangeDisplay() string {
	return tempOrNA(d.High) + " - " + tempOrNA(d.Low) + " ºC"
}

// POPDisplay formats the probability of precipitation, e.g. "POP 30%".
func (d *DailyForecast) POPDisplay() string {
	if d.POP == nil {
		return "POP N/A"
	}
	return "POP " + strconv.Itoa(*d.POP) + "%"
}

func (d *DailyForecast) clone() *DailyForecast {
	out := *d
	out.High = clonePtr(d.High)
	out.Low = clonePtr(d.Low)
	out.POP = clonePtr(d.POP)
	out.UVIndex = clonePtr(d.UVIndex)
	out.WindChill = clonePtr(d.WindChill)
	out.WindSummary = clonePtr(d.WindSummary)
	return &out
}

func (h *HourlyForecast) clone() *HourlyForecast {
	out := *h
	out.POP = clonePtr(h.POP)
	out.WindSpeed = clonePtr(h.WindSpeed)
	out.WindDirection = clonePtr(h.WindDirection)
	return &out
}

func tempOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
