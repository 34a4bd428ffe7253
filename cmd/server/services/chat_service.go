package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"solar-forecast/cmd/internal/logger"
	"solar-forecast/cmd/server/clients/nominatim"
	"solar-forecast/cmd/server/formatter"
	"solar-forecast/cmd/server/intent"
	"solar-forecast/dto"
	"solar-forecast/models"
	"solar-forecast/repositories"
)

// Geocoder resolves a free-text place name to a location.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (dto.Location, error)
}

// WeatherFetcher retrieves raw weather data matching an intent.
type WeatherFetcher interface {
	Fetch(ctx context.Context, it intent.Intent, lat, lon float64, forecastDays int) (json.RawMessage, error)
}

// ResponseFormatter moderates messages and builds structured documents.
type ResponseFormatter interface {
	Moderate(ctx context.Context, message string) (formatter.ModerationResult, *models.AILog, error)
	Format(ctx context.Context, weatherData json.RawMessage, location dto.Location, it intent.Intent) (*dto.WeatherResponseDocument, *models.AILog, error)
}

// ChatError carries the HTTP status and error envelope for a failed chat
// request.
type ChatError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *ChatError) Error() string {
	if e == nil {
		return "chat_failed"
	}
	return e.Message
}

// ChatService orchestrates one chat turn: moderation, intent analysis,
// geocoding, weather fetch and LLM formatting.
type ChatService struct {
	geocoder     Geocoder
	weather      WeatherFetcher
	formatter    ResponseFormatter
	aiLogs       *repositories.AILogRepository // nil disables usage logging
	forecastDays int
}

func NewChatService(geocoder Geocoder, weather WeatherFetcher, fmtr ResponseFormatter, aiLogs *repositories.AILogRepository, forecastDays int) *ChatService {
	return &ChatService{
		geocoder:     geocoder,
		weather:      weather,
		formatter:    fmtr,
		aiLogs:       aiLogs,
		forecastDays: forecastDays,
	}
}

// Chat handles one message and returns either a *dto.WeatherResponseDocument
// or a dto.LocationRequest. Failures come back as a *ChatError ready for the
// handler to serialize.
func (s *ChatService) Chat(ctx context.Context, message string) (any, *ChatError) {
	// Moderation gate. Errors fail open so a moderation outage never blocks
	// the chat flow, mirroring the behavior users already rely on.
	moderation, moderationLog, err := s.formatter.Moderate(ctx, message)
	s.recordAILog(ctx, moderationLog)
	if err != nil {
		logger.Log.Warnf("moderation check failed, proceeding: %v", err)
	} else if moderation.Flagged {
		return nil, &ChatError{
			StatusCode: http.StatusBadRequest,
			Message:    "Content flagged by moderation",
			Details:    fmt.Sprintf("The following categories were flagged: %s", strings.Join(moderation.Categories, ", ")),
		}
	}

	analyzed := intent.Analyze(message)
	logger.Log.Infof("analyzed intent: type=%s time_frame=%s location=%q", analyzed.APIType, analyzed.TimeFrame, analyzed.Location)

	if analyzed.Location == "" {
		return dto.LocationRequest{
			Type:    "location_request",
			Message: "I couldn't determine the location. Please specify a city or place for the weather forecast. For example: 'weather forecast for London' or 'air quality in Paris'.",
		}, nil
	}

	location, err := s.geocoder.Geocode(ctx, analyzed.Location)
	if err != nil {
		if errors.Is(err, nominatim.ErrNotFound) {
			return dto.LocationRequest{
				Type:    "location_request",
				Message: fmt.Sprintf("I couldn't find the location '%s'. Please check the spelling or try a different city.", analyzed.Location),
			}, nil
		}
		return nil, internalError(fmt.Errorf("failed to resolve location: %w", err))
	}

	weatherData, err := s.weather.Fetch(ctx, analyzed, location.Coordinates.Lat, location.Coordinates.Lon, s.forecastDays)
	if err != nil {
		return nil, internalError(fmt.Errorf("weather service error: %w", err))
	}

	document, formatLog, err := s.formatter.Format(ctx, weatherData, location, analyzed)
	s.recordAILog(ctx, formatLog)
	if err != nil {
		return nil, internalError(fmt.Errorf("error formatting response: %w", err))
	}

	return document, nil
}

func internalError(err error) *ChatError {
	return &ChatError{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred while processing your request",
		Details:    err.Error(),
	}
}

func (s *ChatService) recordAILog(ctx context.Context, aiLog *models.AILog) {
	if s.aiLogs == nil || aiLog == nil {
		return
	}
	if _, err := s.aiLogs.Insert(ctx, *aiLog); err != nil {
		logger.Log.Warnf("failed to record ai log: %v", err)
	}
}
