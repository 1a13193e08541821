package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempRangeDisplay(t *testing.T) {
	forecast := DailyForecast{High: intPtr(12), Low: intPtr(6)}
	assert.Equal(t, "12 - 6 ºC", forecast.TempRangeDisplay())

	forecast = DailyForecast{High: intPtr(-2), Low: intPtr(-11)}
	assert.Equal(t, "-2 - -11 ºC", forecast.TempRangeDisplay())

	forecast = DailyForecast{High: intPtr(12)}
	assert.Equal(t, "12 - N/A ºC", forecast.TempRangeDisplay())

	forecast = DailyForecast{Low: intPtr(6)}
	assert.Equal(t, "N/A - 6 ºC", forecast.TempRangeDisplay())
}

func TestPOPDisplay(t *testing.T) {
	forecast := DailyForecast{POP: intPtr(30)}
	assert.Equal(t, "POP 30%", forecast.POPDisplay())

	forecast = DailyForecast{}
	assert.Equal(t, "POP N/A", forecast.POPDisplay())
}
