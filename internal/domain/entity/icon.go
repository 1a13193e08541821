package entity

import "strings"

// Icon names rendered by the dashboard. Icons are always derived from
// condition text, never read from upstream.
const (
	IconStormy       = "stormy"
	IconSnow         = "snow"
	IconRain         = "rain"
	IconFog          = "fog"
	IconPartlyCloudy = "partly-cloudy"
	IconCloudy       = "cloudy"
	IconSunny        = "sunny"
	IconVariable     = "variable"
)

// DeriveIcon maps condition text to an icon name by keyword precedence.
// The order matters: storms are checked before clouds, and the combined
// cloud+sun case before plain cloud, so ambiguous strings like
// "Cloudy with sunny breaks" resolve to the partly-cloudy icon.
func DeriveIcon(condition string) string {
	s := strings.ToLower(condition)

	hasCloud := strings.Contains(s, "cloud")
	hasSun := strings.Contains(s, "sun") || strings.Contains(s, "clear")

	switch {
	case strings.Contains(s, "thunder") || strings.Contains(s, "storm"):
		return IconStormy
	case strings.Contains(s, "snow") || strings.Contains(s, "flurries"):
		return IconSnow
	case strings.Contains(s, "rain") || strings.Contains(s, "shower") || strings.Contains(s, "drizzle"):
		return IconRain
	case strings.Contains(s, "fog") || strings.Contains(s, "mist"):
		return IconFog
	case hasCloud && hasSun:
		return IconPartlyCloudy
	case hasCloud:
		return IconCloudy
	case hasSun:
		return IconSunny
	default:
		return IconVariable
	}
}
