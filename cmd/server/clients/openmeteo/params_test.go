package openmeteo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solar-forecast/cmd/server/intent"
)

func TestBuildParamsCommonFields(t *testing.T) {
	it := intent.Intent{APIType: intent.TypeForecast, TimeFrame: intent.TimeDaily}
	values := BuildParams(it, 6.5, 3.4, 3)

	assert.Equal(t, "6.5", values.Get("latitude"))
	assert.Equal(t, "3.4", values.Get("longitude"))
	assert.Equal(t, "auto", values.Get("timezone"))
	assert.Equal(t, "json", values.Get("format"))
}

func TestBuildParamsForecast(t *testing.T) {
	daily := BuildParams(intent.Intent{APIType: intent.TypeForecast, TimeFrame: intent.TimeDaily}, 0, 0, 3)
	assert.Contains(t, daily.Get("daily"), "shortwave_radiation_sum")
	assert.Contains(t, daily.Get("daily"), "sunrise")
	assert.Empty(t, daily.Get("hourly"))
	assert.Equal(t, "3", daily.Get("forecast_days"))

	hourly := BuildParams(intent.Intent{APIType: intent.TypeForecast, TimeFrame: intent.TimeHourly}, 0, 0, 3)
	assert.Contains(t, hourly.Get("hourly"), "direct_radiation")
	assert.Contains(t, hourly.Get("hourly"), "uv_index")
	assert.Empty(t, hourly.Get("daily"))
}

func TestBuildParamsArchiveCarriesDateRange(t *testing.T) {
	it := intent.Intent{
		APIType:   intent.TypeArchive,
		TimeFrame: intent.TimeHistorical,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
	values := BuildParams(it, 51.5, -0.1, 3)

	assert.Equal(t, "2024-01-01", values.Get("start_date"))
	assert.Equal(t, "2024-01-31", values.Get("end_date"))
	assert.Contains(t, values.Get("hourly"), "shortwave_radiation")
	assert.Empty(t, values.Get("forecast_days"))
}

func TestBuildParamsPerAPIType(t *testing.T) {
	marine := BuildParams(intent.Intent{APIType: intent.TypeMarine}, 0, 0, 0)
	assert.Contains(t, marine.Get("hourly"), "wave_height")
	assert.Contains(t, marine.Get("hourly"), "swell_wave_period")

	air := BuildParams(intent.Intent{APIType: intent.TypeAirQuality}, 0, 0, 0)
	assert.Contains(t, air.Get("hourly"), "pm2_5")
	assert.Contains(t, air.Get("hourly"), "european_aqi")

	snow := BuildParams(intent.Intent{APIType: intent.TypeSnow}, 0, 0, 0)
	assert.Contains(t, snow.Get("hourly"), "snow_depth")
	assert.Contains(t, snow.Get("daily"), "snowfall_sum")

	climate := BuildParams(intent.Intent{APIType: intent.TypeClimate}, 0, 0, 0)
	assert.Equal(t, "1990-01-01", climate.Get("start_date"))
	assert.Equal(t, "2020-12-31", climate.Get("end_date"))
	assert.Equal(t, "ERA5,CMIP6", climate.Get("models"))
	assert.Contains(t, climate.Get("daily"), "precipitation_sum")
}
