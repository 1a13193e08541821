package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cityPageFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Toronto - Weather - Environment Canada</title>
  <updated>2026-03-05T17:00:00Z</updated>
  <entry>
    <title>Current Conditions: Mostly Cloudy, 8.6&#176;C</title>
    <category term="Current Conditions"/>
    <summary type="html">
      &lt;b&gt;Condition:&lt;/b&gt; Mostly Cloudy &lt;br/&gt;
      &lt;b&gt;Temperature:&lt;/b&gt; 8.6&amp;deg;C &lt;br/&gt;
      &lt;b&gt;Pressure / Tendency:&lt;/b&gt; 102.2 kPa falling&lt;br/&gt;
      &lt;b&gt;Humidity:&lt;/b&gt; 87 %&lt;br/&gt;
      &lt;b&gt;Dewpoint:&lt;/b&gt; 6.6&amp;deg;C &lt;br/&gt;
      &lt;b&gt;Wind:&lt;/b&gt; SSW 24 km/h gust 40 km/h&lt;br/&gt;
      &lt;b&gt;Air Quality Health Index:&lt;/b&gt; 3 &lt;br/&gt;
      &lt;b&gt;Sunrise:&lt;/b&gt; 06:55 &lt;br/&gt;
      &lt;b&gt;Sunset:&lt;/b&gt; 18:10 &lt;br/&gt;
    </summary>
  </entry>
  <entry>
    <title>Tuesday: Sunny. High 13.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Sunny. High 13.</summary>
  </entry>
  <entry>
    <title>Tuesday night: Clear. Low 8.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Clear. Low 8.</summary>
  </entry>
  <entry>
    <title>Wednesday: Showers. High plus 5. POP 70%</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Showers. High plus 5. POP 70%.</summary>
  </entry>
  <entry>
    <title>Wednesday night: Periods of snow. Low minus 2.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Periods of snow with 40 percent chance of flurries. Low minus 2.</summary>
  </entry>
  <entry>
    <title>Thursday: Cloudy. Low zero.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Cloudy. Low zero.</summary>
  </entry>
  <entry>
    <title>RAINFALL WARNING IN EFFECT, Toronto</title>
    <category term="Warnings and Watches"/>
    <summary type="html">Heavy rain expected.</summary>
  </entry>
  <entry>
    <title>No watches or warnings in effect, Toronto</title>
    <category term="Warnings and Watches"/>
    <summary type="html"/>
  </entry>
</feed>`

func TestParseCityPageCurrentConditions(t *testing.T) {
	data, err := ParseCityPage([]byte(cityPageFixture), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Toronto", data.Location)
	assert.Equal(t, "2026-03-05T17:00:00Z", data.LastUpdated)

	assert.Equal(t, "Mostly Cloudy", data.Current.Condition)
	assert.Equal(t, "cloudy", data.Current.Icon)
	assert.Equal(t, 8.6, data.Current.Temperature)
	require.NotNil(t, data.Current.Humidity)
	assert.Equal(t, 87, *data.Current.Humidity)
	require.NotNil(t, data.Current.Pressure)
	assert.Equal(t, 102.2, *data.Current.Pressure)
	require.NotNil(t, data.Current.Dewpoint)
	assert.Equal(t, 6.6, *data.Current.Dewpoint)
	assert.Nil(t, data.Current.Visibility, "absent label leaves the field nil")
	assert.Nil(t, data.Current.WindChill)

	require.NotNil(t, data.Current.WindSpeed)
	assert.Equal(t, 24, *data.Current.WindSpeed)
	require.NotNil(t, data.Current.WindGust)
	assert.Equal(t, 40, *data.Current.WindGust)
	require.NotNil(t, data.Current.WindDirection)
	assert.Equal(t, "SSW", *data.Current.WindDirection)

	require.NotNil(t, data.Current.AirQuality)
	assert.Equal(t, 3, data.Current.AirQuality.Index)

	require.NotNil(t, data.Sun)
	assert.Equal(t, "06:55", data.Sun.Sunrise)
	assert.Equal(t, "18:10", data.Sun.Sunset)
}

func TestParseCityPageForecastPairing(t *testing.T) {
	data, err := ParseCityPage([]byte(cityPageFixture), testNow)
	require.NoError(t, err)

	require.Len(t, data.Daily, 3)

	tuesday := data.Daily[0]
	assert.Equal(t, "Tuesday", tuesday.DayName)
	require.NotNil(t, tuesday.High)
	assert.Equal(t, 13, *tuesday.High)
	require.NotNil(t, tuesday.Low)
	assert.Equal(t, 8, *tuesday.Low)
	assert.Equal(t, "Sunny", tuesday.Summary)
	assert.Equal(t, "sunny", tuesday.Icon)

	wednesday := data.Daily[1]
	assert.Equal(t, "Wednesday", wednesday.DayName)
	require.NotNil(t, wednesday.High)
	assert.Equal(t, 5, *wednesday.High, "spelled-out plus sign")
	require.NotNil(t, wednesday.Low)
	assert.Equal(t, -2, *wednesday.Low, "spelled-out minus sign")
	require.NotNil(t, wednesday.POP)
	assert.Equal(t, 70, *wednesday.POP, "title POP outranks the prose percent")

	thursday := data.Daily[2]
	assert.Equal(t, "Thursday", thursday.DayName)
	require.NotNil(t, thursday.Low)
	assert.Equal(t, 0, *thursday.Low, "spelled-out zero")
	assert.Nil(t, thursday.High)
}

func TestParseCityPageWarnings(t *testing.T) {
	data, err := ParseCityPage([]byte(cityPageFixture), testNow)
	require.NoError(t, err)

	require.Len(t, data.Warnings, 1, "the no-warnings placeholder entry is skipped")
	assert.Equal(t, "RAINFALL WARNING IN EFFECT, Toronto", data.Warnings[0].Type)
	assert.Equal(t, "high", data.Warnings[0].Priority)
	assert.Equal(t, "Heavy rain expected.", data.Warnings[0].Description)
}

func TestParseCityPageCDATASummary(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Ottawa - Weather - Environment Canada</title>
  <entry>
    <title>Current Conditions: Sunny, 2.0&#176;C</title>
    <category term="Current Conditions"/>
    <summary type="html"><![CDATA[<b>Condition:</b> Sunny <br/><b>Temperature:</b> 2.0&deg;C <br/><b>Wind:</b> Calm<br/>]]></summary>
  </entry>
</feed>`

	data, err := ParseCityPage([]byte(payload), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Ottawa", data.Location)
	assert.Equal(t, "Sunny", data.Current.Condition)
	assert.Equal(t, 2.0, data.Current.Temperature)
	require.NotNil(t, data.Current.WindSpeed)
	assert.Equal(t, 0, *data.Current.WindSpeed, "calm wind reads as zero")
	assert.Nil(t, data.Current.WindDirection)
}

func TestParseCityPageNightOnlyLeadingEntry(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Toronto - Weather - Environment Canada</title>
  <entry>
    <title>Tonight: Clear. Low 4.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Clear. Low 4.</summary>
  </entry>
</feed>`

	data, err := ParseCityPage([]byte(payload), testNow)
	require.NoError(t, err)

	require.Len(t, data.Daily, 1)
	// testNow is a Thursday, so tonight belongs to Friday.
	assert.Equal(t, "Friday", data.Daily[0].DayName)
	assert.Nil(t, data.Daily[0].High)
	require.NotNil(t, data.Daily[0].Low)
	assert.Equal(t, 4, *data.Daily[0].Low)
}

func TestParseCityPagePOPFromSummaryProse(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Toronto - Weather - Environment Canada</title>
  <entry>
    <title>Monday: Chance of showers. High 10.</title>
    <category term="Weather Forecasts"/>
    <summary type="html">Chance of showers, 30 percent. High 10.</summary>
  </entry>
</feed>`

	data, err := ParseCityPage([]byte(payload), testNow)
	require.NoError(t, err)

	require.Len(t, data.Daily, 1)
	require.NotNil(t, data.Daily[0].POP)
	assert.Equal(t, 30, *data.Daily[0].POP)
}

func TestParseCityPageMalformedXML(t *testing.T) {
	_, err := ParseCityPage([]byte(`<feed><entry></feed>`), testNow)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseCityPageDefaults(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>Weather</title></feed>`

	data, err := ParseCityPage([]byte(payload), testNow)
	require.NoError(t, err)

	assert.Equal(t, "Toronto", data.Location, "title without a city falls back to the default")
	assert.Equal(t, "Unknown", data.LastUpdated)
}
