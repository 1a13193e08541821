package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIcon(t *testing.T) {
	tests := []struct {
		condition string
		expected  string
	}{
		{"Thunderstorm", IconStormy},
		{"Risk of thundershowers", IconStormy},
		{"Snow squalls", IconSnow},
		{"Light flurries", IconSnow},
		{"Rain", IconRain},
		{"Chance of showers", IconRain},
		{"Drizzle", IconRain},
		{"Fog patches", IconFog},
		{"Mist", IconFog},
		{"A mix of sun and cloud", IconPartlyCloudy},
		{"Cloudy with sunny breaks", IconPartlyCloudy},
		{"Partly cloudy with clear breaks", IconPartlyCloudy},
		{"Mostly cloudy", IconCloudy},
		{"Sunny", IconSunny},
		{"Clear", IconSunny},
		{"Haze", IconVariable},
		{"", IconVariable},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveIcon(tt.condition))
		})
	}
}

func TestDeriveIconPrecedence(t *testing.T) {
	// Precipitation keywords outrank cloud and sun keywords.
	assert.Equal(t, IconStormy, DeriveIcon("Cloudy with thunderstorms"))
	assert.Equal(t, IconSnow, DeriveIcon("Sunny with snow flurries"))
	assert.Equal(t, IconRain, DeriveIcon("Cloudy periods with showers"))
	assert.Equal(t, IconSnow, DeriveIcon("Snow mixed with rain"))
}
