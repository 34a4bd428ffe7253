package openmeteo

import (
	"net/url"
	"strconv"
	"strings"

	"solar-forecast/cmd/server/intent"
)

var forecastHourlyVars = []string{
	"shortwave_radiation",
	"direct_radiation",
	"diffuse_radiation",
	"temperature_2m",
	"cloudcover",
	"uv_index",
	"windspeed_10m",
}

var forecastDailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"sunrise",
	"sunset",
	"uv_index_max",
	"shortwave_radiation_sum",
}

var archiveHourlyVars = []string{
	"temperature_2m",
	"shortwave_radiation",
	"direct_radiation",
	"diffuse_radiation",
}

var marineHourlyVars = []string{
	"wave_height",
	"wave_direction",
	"wave_period",
	"wind_wave_height",
	"wind_wave_direction",
	"wind_wave_period",
	"swell_wave_height",
	"swell_wave_direction",
	"swell_wave_period",
}

var airQualityHourlyVars = []string{
	"pm10",
	"pm2_5",
	"carbon_monoxide",
	"nitrogen_dioxide",
	"sulphur_dioxide",
	"ozone",
	"aerosol_optical_depth",
	"dust",
	"uv_index",
	"european_aqi",
}

var snowHourlyVars = []string{
	"snowfall",
	"snow_depth",
	"snow_height",
	"freezing_level_height",
	"snow_melt",
}

var snowDailyVars = []string{
	"snowfall_sum",
	"snow_depth_max",
}

var climateDailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"shortwave_radiation_sum",
}

func baseParams(lat, lon float64) url.Values {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("timezone", "auto")
	return values
}

func forecastParams(values url.Values, timeFrame intent.TimeFrame, forecastDays int) {
	if timeFrame == intent.TimeHourly {
		values.Set("hourly", strings.Join(forecastHourlyVars, ","))
	} else {
		values.Set("daily", strings.Join(forecastDailyVars, ","))
	}
	if forecastDays > 0 {
		values.Set("forecast_days", strconv.Itoa(forecastDays))
	}
}

func archiveParams(values url.Values, startDate, endDate string) {
	values.Set("start_date", startDate)
	values.Set("end_date", endDate)
	values.Set("hourly", strings.Join(archiveHourlyVars, ","))
}

func marineParams(values url.Values) {
	values.Set("hourly", strings.Join(marineHourlyVars, ","))
}

func airQualityParams(values url.Values) {
	values.Set("hourly", strings.Join(airQualityHourlyVars, ","))
}

func snowParams(values url.Values) {
	values.Set("hourly", strings.Join(snowHourlyVars, ","))
	values.Set("daily", strings.Join(snowDailyVars, ","))
}

func climateParams(values url.Values) {
	values.Set("start_date", "1990-01-01")
	values.Set("end_date", "2020-12-31")
	values.Set("models", "ERA5,CMIP6")
	values.Set("daily", strings.Join(climateDailyVars, ","))
}

// BuildParams assembles the query parameters for an Open-Meteo request based
// on the analyzed intent.
func BuildParams(it intent.Intent, lat, lon float64, forecastDays int) url.Values {
	values := baseParams(lat, lon)

	switch it.APIType {
	case intent.TypeForecast:
		forecastParams(values, it.TimeFrame, forecastDays)
	case intent.TypeArchive:
		archiveParams(values, it.StartDate, it.EndDate)
	case intent.TypeMarine:
		marineParams(values)
	case intent.TypeAirQuality:
		airQualityParams(values)
	case intent.TypeSnow:
		snowParams(values)
	case intent.TypeClimate:
		climateParams(values)
	}

	values.Set("format", "json")
	return values
}
