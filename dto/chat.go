package dto

import "encoding/json"

// ChatRequest is the body of POST /chat/.
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"What's the weather in Lagos?"`
}

// Coordinates is a lat/lon pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Location is the resolved place a weather answer refers to.
type Location struct {
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
}

// HourlyForecastEntry is one hour of analyzed forecast data.
type HourlyForecastEntry struct {
	Hour           string `json:"hour"`
	Conditions     string `json:"conditions"`
	SolarPotential string `json:"solar_potential"`
}

// DailyForecastEntry is one day of analyzed forecast data.
type DailyForecastEntry struct {
	Date           string `json:"date"`
	Conditions     string `json:"conditions"`
	SolarPotential string `json:"solar_potential"`
}

// WaveConditions summarizes marine conditions.
type WaveConditions struct {
	WaveHeight     string `json:"wave_height"`
	WaveDirection  string `json:"wave_direction"`
	SeaTemperature string `json:"sea_temperature"`
}

// AirQualityMetrics summarizes air quality data.
type AirQualityMetrics struct {
	AQILevel           string `json:"aqi_level"`
	Pollutants         string `json:"pollutants"`
	HealthImplications string `json:"health_implications"`
}

// Recommendation is a single piece of actionable advice.
type Recommendation struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
}

// WeatherResponseDocument is the structured answer produced by the query
// service. query_type selects which of the payload fields is populated;
// time_frame is only meaningful for query_type "forecast". Exactly one
// payload field is set, consistent with the discriminant.
type WeatherResponseDocument struct {
	QueryType string   `json:"query_type"`
	TimeFrame string   `json:"time_frame,omitempty"`
	Location  Location `json:"location"`
	Summary   string   `json:"summary"`

	HourlyForecast    []HourlyForecastEntry `json:"hourly_forecast,omitempty"`
	DailyForecast     []DailyForecastEntry  `json:"daily_forecast,omitempty"`
	WaveConditions    *WaveConditions       `json:"wave_conditions,omitempty"`
	AirQualityMetrics *AirQualityMetrics    `json:"air_quality_metrics,omitempty"`

	Recommendations []Recommendation `json:"recommendations,omitempty"`

	// RawData carries the unprocessed upstream weather payload.
	RawData json.RawMessage `json:"raw_data,omitempty"`
}

// ErrorResponse is the failure envelope returned by the query service.
type ErrorResponse struct {
	Error   string `json:"error" example:"An error occurred while processing your request"`
	Details string `json:"details,omitempty"`
}

// LocationRequest asks the user to supply or correct a location.
type LocationRequest struct {
	Type    string `json:"type" example:"location_request"`
	Message string `json:"message"`
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Solar Forecast API is running"`
}
