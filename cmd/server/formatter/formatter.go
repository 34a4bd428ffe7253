package formatter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"solar-forecast/cmd/server/intent"
	"solar-forecast/config"
	"solar-forecast/dto"
	"solar-forecast/models"
)

const moderationInstruction = `
You are a content moderation filter for a weather chat assistant.
Classify the user message and respond with JSON only:
- flagged: true when the message contains hate, harassment, sexual content,
  self-harm, or violence; false otherwise.
- categories: the list of violated category names, empty when flagged is false.
Questions about weather, locations and travel are never flagged.
`

// Formatter turns raw weather payloads into structured response documents
// using Gemini, and moderates incoming messages.
type Formatter struct {
	client            *genai.Client
	model             string
	marineSampleHours int
}

// New creates a Formatter from GEMINI_API_KEY and the configured model.
func New(ctx context.Context) (*Formatter, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	cfg := config.GetConfig()
	return &Formatter{
		client:            client,
		model:             cfg.GeminiModel,
		marineSampleHours: cfg.MarineSampleHours,
	}, nil
}

// ModerationResult is the outcome of the moderation gate.
type ModerationResult struct {
	Flagged    bool     `json:"flagged"`
	Categories []string `json:"categories"`
}

// Moderate classifies the message. Callers treat errors as "not flagged" so
// a moderation outage never blocks the chat flow.
func (f *Formatter) Moderate(ctx context.Context, message string) (ModerationResult, *models.AILog, error) {
	startTime := time.Now()

	result, err := f.client.Models.GenerateContent(
		ctx,
		f.model,
		genai.Text(message),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: moderationInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    moderationSchema,
		},
	)
	if err != nil {
		return ModerationResult{}, nil, err
	}

	var moderation ModerationResult
	if err := json.Unmarshal([]byte(result.Text()), &moderation); err != nil {
		return ModerationResult{}, nil, err
	}

	return moderation, buildAILog("moderation", "", f.model, message, result, startTime), nil
}

// Format asks Gemini to analyze the raw weather data and returns the
// structured document the chat client consumes. The raw payload, location and
// discriminant fields are attached afterwards, the model only produces the
// analysis fields.
func (f *Formatter) Format(ctx context.Context, weatherData json.RawMessage, location dto.Location, it intent.Intent) (*dto.WeatherResponseDocument, *models.AILog, error) {
	startTime := time.Now()

	optimized, err := f.optimizeWeatherData(weatherData, it)
	if err != nil {
		return nil, nil, err
	}

	systemMessage := fmt.Sprintf(
		"You are a weather expert providing analysis of %s data. Focus on practical insights and clear explanations.",
		it.APIType,
	)
	userMessage := fmt.Sprintf("Analyze this %s data for %s:\n%s", it.APIType, location.City, optimized)

	result, err := f.client.Models.GenerateContent(
		ctx,
		f.model,
		genai.Text(userMessage),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemMessage}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    responseSchema(it),
		},
	)
	if err != nil {
		return nil, nil, err
	}

	var document dto.WeatherResponseDocument
	if err := json.Unmarshal([]byte(result.Text()), &document); err != nil {
		return nil, nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	document.QueryType = string(it.APIType)
	document.TimeFrame = string(it.TimeFrame)
	document.Location = location
	document.RawData = weatherData

	return &document, buildAILog("format", string(it.APIType), f.model, userMessage, result, startTime), nil
}

// optimizeWeatherData trims the payload before prompting. Marine responses
// carry nine hourly series over several days; only the first day is useful
// for the analysis.
func (f *Formatter) optimizeWeatherData(weatherData json.RawMessage, it intent.Intent) (string, error) {
	if it.APIType != intent.TypeMarine {
		indented, err := indentJSON(weatherData)
		if err != nil {
			return "", err
		}
		return indented, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(weatherData, &payload); err != nil {
		return "", err
	}

	optimized := map[string]any{}
	if hourly, ok := payload["hourly"].(map[string]any); ok {
		trimmed := map[string]any{}
		for key, value := range hourly {
			if series, ok := value.([]any); ok && len(series) > f.marineSampleHours {
				trimmed[key] = series[:f.marineSampleHours]
			} else {
				trimmed[key] = value
			}
		}
		optimized["hourly"] = trimmed
	}
	for _, key := range []string{"latitude", "longitude", "timezone", "timezone_abbreviation"} {
		if value, ok := payload[key]; ok {
			optimized[key] = value
		}
	}

	buf, err := json.MarshalIndent(optimized, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func indentJSON(raw json.RawMessage) (string, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	buf, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func buildAILog(kind, queryType, model, prompt string, result *genai.GenerateContentResponse, startTime time.Time) *models.AILog {
	aiLog := &models.AILog{
		Kind:           kind,
		QueryType:      queryType,
		ModelName:      model,
		ModelVersion:   result.ModelVersion,
		DurationMs:     time.Since(startTime).Milliseconds(),
		InputPrompt:    prompt,
		OutputResponse: result.Text(),
		RequestedAt:    startTime,
		CompletedAt:    time.Now(),
	}
	if result.UsageMetadata != nil {
		aiLog.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		aiLog.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		aiLog.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
	}
	return aiLog
}
