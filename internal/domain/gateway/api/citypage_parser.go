package api

import (
	"bytes"
	"encoding/xml"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model/external"
)

var (
	// boldLabelRegexp matches one "<b>Label:</b> value" pair inside the
	// current-conditions HTML summary.
	boldLabelRegexp = regexp.MustCompile(`<b>([^<:]+):</b>([^<]*)`)

	// numberRegexp extracts the first signed decimal number from a value.
	numberRegexp = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	// highLowRegexp matches "High 13", "Low minus 2", "High plus 5" or
	// "Low zero" in a forecast title, capturing the spelled sign and digits.
	highLowRegexp = regexp.MustCompile(`(?i)\b(high|low)\s+(minus\s+|plus\s+)?(\d+|zero)\b`)

	// popTitleRegexp matches "POP 30%" in a forecast title.
	popTitleRegexp = regexp.MustCompile(`(?i)\bPOP\s+(\d+)\s*%`)

	// popSummaryRegexp matches the prose form "30 percent chance" used when
	// the title omits the POP figure.
	popSummaryRegexp = regexp.MustCompile(`(?i)\b(\d+)\s+percent\b`)

	// gustRegexp matches the gust clause of a wind reading.
	gustRegexp = regexp.MustCompile(`(?i)\bgust(?:ing)?(?:\s+to)?\s+(\d+)`)

	// windDirectionRegexp matches the compass direction at the start of a
	// wind reading, e.g. "SSW 24 km/h".
	windDirectionRegexp = regexp.MustCompile(`^([NSEW]{1,3})\b`)
)

// ParseCityPage converts a city page Atom document into the normalized model.
// A document that does not decode as a feed is a hard parse failure; missing
// entries and missing labels degrade to nil fields. now anchors the remapping
// of "tonight" forecast titles onto the following day's name.
func ParseCityPage(data []byte, now time.Time) (*entity.WeatherData, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	var feed external.AtomFeed
	if err := decoder.Decode(&feed); err != nil {
		return nil, parseError("malformed feed", err)
	}

	out := &entity.WeatherData{
		Location:    feedLocation(feed.Title),
		LastUpdated: "Unknown",
	}
	if feed.Updated != "" {
		out.LastUpdated = feed.Updated
	}

	var forecastTitles []string
	for i := range feed.Entries {
		entry := &feed.Entries[i]
		switch {
		case entry.HasCategory(external.CategoryCurrentConditions):
			applyCurrentConditions(out, entry)
		case entry.HasCategory(external.CategoryWeatherForecasts):
			forecastTitles = append(forecastTitles, entry.Title)
			if pop := popFromSummary(entry.Summary.Value); pop != nil {
				forecastTitles[len(forecastTitles)-1] = appendPOP(entry.Title, *pop)
			}
		case entry.HasCategory(external.CategoryWarnings):
			if w, ok := warningFromEntry(entry); ok {
				out.Warnings = append(out.Warnings, w)
			}
		}
	}

	out.Daily = foldForecastTitles(forecastTitles, now)
	return out, nil
}

// feedLocation extracts the city name from a feed title such as
// "Toronto - Weather - Environment Canada".
func feedLocation(title string) string {
	if idx := strings.Index(title, " - "); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return defaultLocation
}

// applyCurrentConditions scans the entry's HTML summary for bold label/value
// pairs and fills the current-conditions fields. Labels the summary omits
// leave their fields nil; temperature, humidity and wind speed default to 0.
func applyCurrentConditions(out *entity.WeatherData, entry *external.AtomEntry) {
	labels := extractLabels(entry.Summary.Value)

	current := entity.CurrentConditions{}
	current.Condition = labels["Condition"]
	current.Icon = entity.DeriveIcon(current.Condition)

	if v, ok := firstNumber(labels["Temperature"]); ok {
		current.Temperature = v
	}

	humidity := 0
	if v, ok := firstNumber(labels["Humidity"]); ok {
		humidity = int(v)
	}
	current.Humidity = &humidity

	if v, ok := firstNumber(labels["Pressure / Tendency"]); ok {
		current.Pressure = &v
	} else if v, ok := firstNumber(labels["Pressure"]); ok {
		current.Pressure = &v
	}
	if v, ok := firstNumber(labels["Visibility"]); ok {
		current.Visibility = &v
	}
	if v, ok := firstNumber(labels["Dewpoint"]); ok {
		current.Dewpoint = &v
	}
	if v, ok := firstNumber(labels["Wind Chill"]); ok {
		current.WindChill = &v
	}
	if v, ok := firstNumber(labels["Humidex"]); ok {
		current.Humidex = &v
	}

	speed, gust, direction := parseWind(labels["Wind"])
	current.WindSpeed = &speed
	current.WindGust = gust
	current.WindDirection = direction

	if v, ok := firstNumber(labels["Air Quality Health Index"]); ok {
		current.AirQuality = &entity.AirQuality{Index: int(v)}
	}

	out.Current = current

	sunrise := strings.TrimSpace(labels["Sunrise"])
	sunset := strings.TrimSpace(labels["Sunset"])
	if sunrise != "" || sunset != "" {
		out.Sun = &entity.SunTimes{Sunrise: sunrise, Sunset: sunset}
	}

	if v := strings.TrimSpace(labels["Observed at"]); v != "" {
		out.LastUpdated = v
	}
}

// extractLabels collects the bold label/value pairs from an HTML summary into
// a map keyed by label. HTML entities in values are decoded.
func extractLabels(summary string) map[string]string {
	labels := make(map[string]string)
	for _, match := range boldLabelRegexp.FindAllStringSubmatch(summary, -1) {
		label := strings.TrimSpace(html.UnescapeString(match[1]))
		value := strings.TrimSpace(html.UnescapeString(match[2]))
		if _, seen := labels[label]; !seen {
			labels[label] = value
		}
	}
	return labels
}

func firstNumber(value string) (float64, bool) {
	match := numberRegexp.FindString(value)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseWind splits a wind reading such as "SSW 24 km/h gust 40 km/h" into
// speed, gust and direction. "Calm" and unreadable values yield speed 0.
func parseWind(value string) (speed int, gust *int, direction *string) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "Calm") {
		return 0, nil, nil
	}

	if match := windDirectionRegexp.FindStringSubmatch(value); match != nil {
		dir := match[1]
		direction = &dir
	}

	if v, ok := firstNumber(value); ok {
		speed = int(v)
	}

	if match := gustRegexp.FindStringSubmatch(value); match != nil {
		if v, err := strconv.Atoi(match[1]); err == nil {
			gust = &v
		}
	}

	return speed, gust, direction
}

// warningFromEntry converts a warnings entry into a prioritized warning.
// The feed's "no watches or warnings" placeholder entry is skipped.
func warningFromEntry(entry *external.AtomEntry) (entity.WeatherWarning, bool) {
	title := strings.TrimSpace(entry.Title)
	if title == "" || strings.Contains(strings.ToLower(title), "no watches or warnings") {
		return entity.WeatherWarning{}, false
	}
	return entity.WeatherWarning{
		Type:        title,
		Priority:    classifyWarning(title),
		Description: strings.TrimSpace(html.UnescapeString(entry.Summary.Value)),
	}, true
}

// foldForecastTitles pairs day and night forecast titles into one record per
// day, preserving feed order. Titles look like "Tuesday: Sunny. High 13." and
// "Tuesday night: Clear. Low minus 2. POP 30%"; the day title supplies the
// high and summary, the night title the low, and POP is the maximum present
// in either.
func foldForecastTitles(titles []string, now time.Time) []entity.DailyForecast {
	var order []string
	byDay := make(map[string]*entity.DailyForecast)

	for _, title := range titles {
		label, rest, found := strings.Cut(title, ":")
		if !found {
			continue
		}
		rest = strings.TrimSpace(rest)

		dayName, isNight := normalizePeriodLabel(label, now)
		rec, seen := byDay[dayName]
		if !seen {
			rec = &entity.DailyForecast{DayName: dayName}
			byDay[dayName] = rec
			order = append(order, dayName)
		}

		// The High/Low keyword decides the bound; a day-labeled entry can
		// still carry a Low on transition days.
		if temp, isLow, ok := spokenTemperature(rest); ok {
			if isLow {
				if rec.Low == nil {
					rec.Low = &temp
				}
			} else if rec.High == nil {
				rec.High = &temp
			}
		}

		if !isNight || rec.Summary == "" {
			rec.Summary = forecastSummary(rest)
		}

		if match := popTitleRegexp.FindStringSubmatch(rest); match != nil {
			if pop, err := strconv.Atoi(match[1]); err == nil {
				if rec.POP == nil || pop > *rec.POP {
					rec.POP = &pop
				}
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

// spokenTemperature reads the "High 13" / "Low minus 2" / "Low zero" clause,
// honoring the feed's spelled-out signs, and reports whether the clause names
// the low bound.
func spokenTemperature(text string) (temp int, isLow bool, ok bool) {
	match := highLowRegexp.FindStringSubmatch(text)
	if match == nil {
		return 0, false, false
	}

	isLow = strings.EqualFold(match[1], "low")

	digits := match[3]
	if strings.EqualFold(digits, "zero") {
		return 0, isLow, true
	}

	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, false
	}
	if strings.HasPrefix(strings.ToLower(match[2]), "minus") {
		v = -v
	}
	return v, isLow, true
}

// forecastSummary strips the trailing High/Low and POP clauses, keeping the
// leading condition sentence.
func forecastSummary(text string) string {
	if match := highLowRegexp.FindStringIndex(text); match != nil {
		text = text[:match[0]]
	}
	if match := popTitleRegexp.FindStringIndex(text); match != nil {
		text = text[:match[0]]
	}
	return strings.TrimSuffix(strings.TrimSpace(text), ".")
}

// popFromSummary falls back to the prose "30 percent" form inside the entry
// body when the title carries no POP clause.
func popFromSummary(summary string) *int {
	match := popSummaryRegexp.FindStringSubmatch(html.UnescapeString(summary))
	if match == nil {
		return nil
	}
	v, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &v
}

// appendPOP folds a body-derived POP figure into the title grammar so the
// title scanner sees a single form.
func appendPOP(title string, pop int) string {
	if popTitleRegexp.MatchString(title) {
		return title
	}
	return title + " POP " + strconv.Itoa(pop) + "%"
}
