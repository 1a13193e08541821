package api

import (
	"encoding/json"
	"strings"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model/external"
)

const defaultLocation = "Toronto"

// maxDailyForecasts bounds the daily list surfaced to the dashboard.
const maxDailyForecasts = 7

// ParseGeoMet converts a GeoMet JSON document into the normalized model.
// A missing features array or missing first-feature properties is a hard
// parse failure; every field below that degrades independently. now anchors
// the remapping of "tonight" periods onto the following day's name.
func ParseGeoMet(data []byte, now time.Time) (*entity.WeatherData, error) {
	var resp external.GeoMetResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, parseError("malformed response", err)
	}
	if len(resp.Features) == 0 {
		return nil, parseError("malformed response: no features", nil)
	}
	props := resp.Features[0].Properties
	if props == nil {
		return nil, parseError("malformed response: feature has no properties", nil)
	}

	out := &entity.WeatherData{
		Location:    defaultLocation,
		LastUpdated: "Unknown",
	}
	if props.Metadata != nil {
		if loc := props.Metadata.Location.Text(); loc != "" {
			out.Location = loc
		}
		if props.Metadata.TimeStamp != "" {
			out.LastUpdated = props.Metadata.TimeStamp
		}
	}

	out.Current = geoMetCurrent(props.CurrentConditions)
	if props.DailyForecast != nil {
		out.Daily = geoMetDaily(props.DailyForecast.Periods, now)
	}
	if props.HourlyForecast != nil {
		out.Hourly = geoMetHourly(props.HourlyForecast.Periods)
	}
	out.Warnings = geoMetWarnings(props.Warnings)

	if props.RiseSet != nil && (props.RiseSet.Sunrise != "" || props.RiseSet.Sunset != "") {
		out.Sun = &entity.SunTimes{Sunrise: props.RiseSet.Sunrise, Sunset: props.RiseSet.Sunset}
	}

	return out, nil
}

// geoMetCurrent normalizes the current-conditions section. Temperature,
// humidity and wind speed are non-optional in the model and default to 0
// when the feed omits them; everything else stays nil.
func geoMetCurrent(cc *external.GeoMetCurrent) entity.CurrentConditions {
	current := entity.CurrentConditions{}
	if cc == nil {
		current.Icon = entity.DeriveIcon("")
		return current
	}

	current.Condition = cc.Condition.Text()
	current.Icon = entity.DeriveIcon(current.Condition)

	current.Temperature, _ = cc.Temperature.Float()

	humidity := 0
	if v, ok := cc.Humidity.Float(); ok {
		humidity = int(v)
	}
	current.Humidity = &humidity

	if v, ok := cc.Pressure.Float(); ok {
		current.Pressure = &v
	}
	if v, ok := cc.Visibility.Float(); ok {
		current.Visibility = &v
	}
	if v, ok := cc.Dewpoint.Float(); ok {
		current.Dewpoint = &v
	}

	windSpeed := 0
	if cc.Wind != nil {
		if v, ok := cc.Wind.Speed.Float(); ok {
			windSpeed = int(v)
		}
		if v, ok := cc.Wind.Gust.Float(); ok {
			gust := int(v)
			current.WindGust = &gust
		}
		if dir := cc.Wind.Direction.Text(); dir != "" {
			current.WindDirection = &dir
		}
	}
	current.WindSpeed = &windSpeed

	return current
}

// geoMetDaily folds the raw day/night periods into one record per day name,
// preserving feed order. The day period supplies high, condition, UV index
// and wind summary; the night period supplies the low; POP is the maximum
// present in either; first-seen wins for redundant fields.
func geoMetDaily(periods []external.GeoMetPeriod, now time.Time) []entity.DailyForecast {
	var order []string
	byDay := make(map[string]*entity.DailyForecast)
	summaryFromDay := make(map[string]bool)

	for _, period := range periods {
		label := period.Period.Text()
		if label == "" {
			continue
		}

		dayName, isNight := normalizePeriodLabel(label, now)
		rec, seen := byDay[dayName]
		if !seen {
			rec = &entity.DailyForecast{DayName: dayName}
			byDay[dayName] = rec
			order = append(order, dayName)
		}

		if isNight {
			if rec.Low == nil {
				if v, ok := period.Temperature.Float(); ok {
					low := int(v)
					rec.Low = &low
				}
			}
		} else {
			if rec.High == nil {
				if v, ok := period.Temperature.Float(); ok {
					high := int(v)
					rec.High = &high
				}
			}
			// The day period owns the summary, even when a remapped night
			// period (Tonight) reached this day first.
			if text := period.TextSummary.Text(); text != "" && !summaryFromDay[dayName] {
				rec.Summary = text
				summaryFromDay[dayName] = true
			}
			if rec.UVIndex == nil {
				if v, ok := period.UVIndex.Float(); ok {
					uv := int(v)
					rec.UVIndex = &uv
				}
			}
			if rec.WindSummary == nil {
				if ws := period.WindSummary.Text(); ws != "" {
					rec.WindSummary = &ws
				}
			}
			if rec.WindChill == nil {
				if wc := period.WindChill.Text(); wc != "" {
					rec.WindChill = &wc
				}
			}
		}

		// A night-only day still gets a summary so the card is not blank.
		if rec.Summary == "" {
			rec.Summary = period.TextSummary.Text()
		}

		if v, ok := period.POP.Float(); ok {
			pop := int(v)
			if rec.POP == nil || pop > *rec.POP {
				rec.POP = &pop
			}
		}
	}

	forecasts := make([]entity.DailyForecast, 0, len(order))
	for _, dayName := range order {
		rec := byDay[dayName]
		rec.Icon = entity.DeriveIcon(rec.Summary)
		forecasts = append(forecasts, *rec)
		if len(forecasts) == maxDailyForecasts {
			break
		}
	}
	return forecasts
}

// normalizePeriodLabel splits a period label into its day name and whether it
// is a night period. The feed labels the first night period "Tonight"; that
// period describes the night leading into the next calendar day, so it is
// mapped onto the following day's weekday name rather than hardcoded.
func normalizePeriodLabel(label string, now time.Time) (dayName string, isNight bool) {
	lower := strings.ToLower(strings.TrimSpace(label))

	if lower == "tonight" {
		return now.AddDate(0, 0, 1).Weekday().String(), true
	}

	if strings.HasSuffix(lower, " night") {
		return strings.TrimSpace(label[:len(label)-len(" night")]), true
	}

	return strings.TrimSpace(label), false
}

func geoMetHourly(periods []external.GeoMetHourly) []entity.HourlyForecast {
	if len(periods) == 0 {
		return nil
	}

	hourly := make([]entity.HourlyForecast, 0, len(periods))
	for _, period := range periods {
		h := entity.HourlyForecast{
			Time:      period.Time,
			Condition: period.Condition.Text(),
		}
		h.Icon = entity.DeriveIcon(h.Condition)
		h.Temperature, _ = period.Temperature.Float()
		if v, ok := period.POP.Float(); ok {
			pop := int(v)
			h.POP = &pop
		}
		if period.Wind != nil {
			if v, ok := period.Wind.Speed.Float(); ok {
				speed := int(v)
				h.WindSpeed = &speed
			}
			if dir := period.Wind.Direction.Text(); dir != "" {
				h.WindDirection = &dir
			}
		}
		hourly = append(hourly, h)
	}
	return hourly
}

func geoMetWarnings(events []external.GeoMetWarningEvent) []entity.WeatherWarning {
	var warnings []entity.WeatherWarning
	for _, event := range events {
		name := event.Name.Text()
		if name == "" {
			continue
		}
		warnings = append(warnings, entity.WeatherWarning{
			Type:        name,
			Priority:    classifyWarning(name + " " + event.Type),
			Description: event.Description.Text(),
		})
	}
	return warnings
}

// classifyWarning maps alert wording onto a display priority.
func classifyWarning(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "warning"):
		return entity.PriorityHigh
	case strings.Contains(lower, "watch"):
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}

// ParseAQHI extracts the AQHI reading from the air-quality endpoint's
// payload. Malformed JSON is a parse failure; an envelope that carries no
// usable index yields nil without error, because the merge is best-effort.
func ParseAQHI(data []byte) (*entity.AirQuality, error) {
	var resp external.AQHIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, parseError("malformed air quality response", err)
	}
	if len(resp.Features) == 0 {
		return nil, nil
	}
	props := resp.Features[0].Properties
	if props == nil || props.AQHI == nil || !props.AQHI.Valid {
		return nil, nil
	}
	return &entity.AirQuality{
		Index:    int(props.AQHI.Value),
		Category: props.RiskCategory.Text(),
	}, nil
}
