package external

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexNumber decodes a JSON number that the GeoMet API may serialize either
// as a bare number or as a quoted string. Unparseable values are kept invalid
// instead of failing the surrounding document.
type FlexNumber struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		f.Valid = false
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		f.Valid = false
		return nil
	}
	f.Value = v
	f.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Bilingual is a localized text value; only the English side is consumed.
type Bilingual struct {
	En string `json:"en"`
}

// Measure is a numeric reading nested under value.en.
type Measure struct {
	Value *struct {
		En FlexNumber `json:"en"`
	} `json:"value"`
}

// Float resolves the nested value chain, reporting whether a usable number
// was present anywhere along it.
func (m *Measure) Float() (float64, bool) {
	if m == nil || m.Value == nil || !m.Value.En.Valid {
		return 0, false
	}
	return m.Value.En.Value, true
}

// Text resolves a Bilingual pointer to its English text.
func (b *Bilingual) Text() string {
	if b == nil {
		return ""
	}
	return b.En
}

// GeoMetResponse is the GeoJSON-like feature collection returned by the
// GeoMet weather endpoint.
type GeoMetResponse struct {
	Features []GeoMetFeature `json:"features"`
}

// GeoMetFeature carries the weather payload in its properties member.
type GeoMetFeature struct {
	Properties *GeoMetProperties `json:"properties"`
}

// GeoMetProperties groups the sections of the weather payload. Every section
// is optional; consumers degrade per field.
type GeoMetProperties struct {
	Metadata          *GeoMetMetadata      `json:"metadata"`
	CurrentConditions *GeoMetCurrent       `json:"currentConditions"`
	DailyForecast     *GeoMetDailyGroup    `json:"dailyForecast"`
	HourlyForecast    *GeoMetHourlyGroup   `json:"hourlyForecast"`
	RiseSet           *GeoMetRiseSet       `json:"riseSet"`
	Warnings          []GeoMetWarningEvent `json:"warnings"`
}

// GeoMetMetadata describes the location and issue time of the payload.
type GeoMetMetadata struct {
	Location  *Bilingual `json:"location"`
	TimeStamp string     `json:"timeStamp"`
}

// GeoMetCurrent is the current-conditions section.
type GeoMetCurrent struct {
	Condition   *Bilingual  `json:"condition"`
	Temperature *Measure    `json:"temperature"`
	Humidity    *Measure    `json:"relativeHumidity"`
	Pressure    *Measure    `json:"pressure"`
	Visibility  *Measure    `json:"visibility"`
	Dewpoint    *Measure    `json:"dewpoint"`
	Wind        *GeoMetWind `json:"wind"`
}

// GeoMetWind groups wind speed, gust and direction.
type GeoMetWind struct {
	Speed     *Measure   `json:"speed"`
	Gust      *Measure   `json:"gust"`
	Direction *Bilingual `json:"direction"`
}

// GeoMetDailyGroup holds the raw per-period forecast entries. Periods come in
// day/night pairs tagged in their label ("Tuesday", "Tuesday night", "Tonight").
type GeoMetDailyGroup struct {
	Periods []GeoMetPeriod `json:"daily"`
}

// GeoMetPeriod is one day or night period of the daily forecast.
type GeoMetPeriod struct {
	Period      *Bilingual `json:"periodLabel"`
	TextSummary *Bilingual `json:"textSummary"`
	Temperature *Measure   `json:"temperature"`
	POP         *Measure   `json:"precipProbability"`
	UVIndex     *Measure   `json:"uvIndex"`
	WindSummary *Bilingual `json:"windSummary"`
	WindChill   *Bilingual `json:"windChill"`
}

// GeoMetHourlyGroup holds the hourly forecast entries.
type GeoMetHourlyGroup struct {
	Periods []GeoMetHourly `json:"hourly"`
}

// GeoMetHourly is one hour of the hourly forecast.
type GeoMetHourly struct {
	Time        string      `json:"date"`
	Condition   *Bilingual  `json:"condition"`
	Temperature *Measure    `json:"temperature"`
	POP         *Measure    `json:"precipProbability"`
	Wind        *GeoMetWind `json:"wind"`
}

// GeoMetRiseSet carries sunrise and sunset times.
type GeoMetRiseSet struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// GeoMetWarningEvent is one active alert in the payload.
type GeoMetWarningEvent struct {
	Name        *Bilingual `json:"name"`
	Type        string     `json:"type"`
	Description *Bilingual `json:"description"`
}

// AQHIResponse is the feature collection returned by the air-quality endpoint.
type AQHIResponse struct {
	Features []AQHIFeature `json:"features"`
}

// AQHIFeature carries the air-quality reading in its properties member.
type AQHIFeature struct {
	Properties *AQHIProperties `json:"properties"`
}

// AQHIProperties is the AQHI reading: index value plus risk category.
type AQHIProperties struct {
	AQHI         *FlexNumber `json:"aqhi"`
	RiskCategory *Bilingual  `json:"riskCategory"`
}

// APIErrorResponse represents error responses from the GeoMet API.
type APIErrorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
