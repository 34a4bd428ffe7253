package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-forecast/cmd/server/clients/nominatim"
	"solar-forecast/cmd/server/formatter"
	"solar-forecast/cmd/server/intent"
	"solar-forecast/dto"
	"solar-forecast/models"
)

type stubGeocoder struct {
	location dto.Location
	err      error
	queries  []string
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (dto.Location, error) {
	s.queries = append(s.queries, query)
	return s.location, s.err
}

type stubWeather struct {
	payload json.RawMessage
	err     error
	calls   int
	lastIt  intent.Intent
}

func (s *stubWeather) Fetch(ctx context.Context, it intent.Intent, lat, lon float64, forecastDays int) (json.RawMessage, error) {
	s.calls++
	s.lastIt = it
	return s.payload, s.err
}

type stubFormatter struct {
	moderation    formatter.ModerationResult
	moderationErr error
	document      *dto.WeatherResponseDocument
	formatErr     error
	formatCalls   int
}

func (s *stubFormatter) Moderate(ctx context.Context, message string) (formatter.ModerationResult, *models.AILog, error) {
	return s.moderation, nil, s.moderationErr
}

func (s *stubFormatter) Format(ctx context.Context, weatherData json.RawMessage, location dto.Location, it intent.Intent) (*dto.WeatherResponseDocument, *models.AILog, error) {
	s.formatCalls++
	return s.document, nil, s.formatErr
}

func lagos() dto.Location {
	return dto.Location{City: "Lagos", Coordinates: dto.Coordinates{Lat: 6.5, Lon: 3.4}}
}

func TestChatHappyPath(t *testing.T) {
	geocoder := &stubGeocoder{location: lagos()}
	weather := &stubWeather{payload: json.RawMessage(`{"daily":{}}`)}
	fmtr := &stubFormatter{document: &dto.WeatherResponseDocument{
		QueryType: "forecast",
		TimeFrame: "daily",
		Location:  lagos(),
		Summary:   "Mostly sunny",
	}}
	service := NewChatService(geocoder, weather, fmtr, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for Lagos")

	require.Nil(t, chatErr)
	document, ok := result.(*dto.WeatherResponseDocument)
	require.True(t, ok)
	assert.Equal(t, "Mostly sunny", document.Summary)
	assert.Equal(t, []string{"Lagos"}, geocoder.queries)
	assert.Equal(t, intent.TypeForecast, weather.lastIt.APIType)
	assert.Equal(t, 1, fmtr.formatCalls)
}

func TestChatWithoutLocationAsksForOne(t *testing.T) {
	geocoder := &stubGeocoder{}
	weather := &stubWeather{}
	service := NewChatService(geocoder, weather, &stubFormatter{}, nil, 3)

	result, chatErr := service.Chat(context.Background(), "hello")

	require.Nil(t, chatErr)
	request, ok := result.(dto.LocationRequest)
	require.True(t, ok)
	assert.Equal(t, "location_request", request.Type)
	assert.Contains(t, request.Message, "Please specify a city or place")
	assert.Empty(t, geocoder.queries)
	assert.Zero(t, weather.calls)
}

func TestChatUnknownLocationAsksForSpelling(t *testing.T) {
	geocoder := &stubGeocoder{err: nominatim.ErrNotFound}
	service := NewChatService(geocoder, &stubWeather{}, &stubFormatter{}, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for Atlantis")

	require.Nil(t, chatErr)
	request, ok := result.(dto.LocationRequest)
	require.True(t, ok)
	assert.Equal(t, "location_request", request.Type)
	assert.Contains(t, request.Message, "'Atlantis'")
	assert.Contains(t, request.Message, "check the spelling")
}

func TestChatFlaggedMessageRejected(t *testing.T) {
	fmtr := &stubFormatter{moderation: formatter.ModerationResult{
		Flagged:    true,
		Categories: []string{"hate", "harassment"},
	}}
	geocoder := &stubGeocoder{}
	service := NewChatService(geocoder, &stubWeather{}, fmtr, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for London")

	assert.Nil(t, result)
	require.NotNil(t, chatErr)
	assert.Equal(t, http.StatusBadRequest, chatErr.StatusCode)
	assert.Equal(t, "Content flagged by moderation", chatErr.Message)
	assert.Equal(t, "The following categories were flagged: hate, harassment", chatErr.Details)
	assert.Empty(t, geocoder.queries, "rejected before geocoding")
}

func TestChatModerationFailureFailsOpen(t *testing.T) {
	fmtr := &stubFormatter{
		moderationErr: errors.New("model unavailable"),
		document:      &dto.WeatherResponseDocument{QueryType: "forecast", Summary: "ok"},
	}
	service := NewChatService(&stubGeocoder{location: lagos()}, &stubWeather{payload: json.RawMessage(`{}`)}, fmtr, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for Lagos")

	require.Nil(t, chatErr)
	assert.NotNil(t, result)
}

func TestChatGeocoderFailureIsInternalError(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("connection refused")}
	service := NewChatService(geocoder, &stubWeather{}, &stubFormatter{}, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for London")

	assert.Nil(t, result)
	require.NotNil(t, chatErr)
	assert.Equal(t, http.StatusInternalServerError, chatErr.StatusCode)
	assert.Equal(t, "An error occurred while processing your request", chatErr.Message)
	assert.Contains(t, chatErr.Details, "failed to resolve location")
}

func TestChatWeatherFailureIsInternalError(t *testing.T) {
	weather := &stubWeather{err: errors.New("upstream timeout")}
	service := NewChatService(&stubGeocoder{location: lagos()}, weather, &stubFormatter{}, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for Lagos")

	assert.Nil(t, result)
	require.NotNil(t, chatErr)
	assert.Equal(t, http.StatusInternalServerError, chatErr.StatusCode)
	assert.Contains(t, chatErr.Details, "weather service error")
}

func TestChatFormatterFailureIsInternalError(t *testing.T) {
	fmtr := &stubFormatter{formatErr: errors.New("schema mismatch")}
	service := NewChatService(&stubGeocoder{location: lagos()}, &stubWeather{payload: json.RawMessage(`{}`)}, fmtr, nil, 3)

	result, chatErr := service.Chat(context.Background(), "weather forecast for Lagos")

	assert.Nil(t, result)
	require.NotNil(t, chatErr)
	assert.Equal(t, http.StatusInternalServerError, chatErr.StatusCode)
	assert.Contains(t, chatErr.Details, "error formatting response")
}
