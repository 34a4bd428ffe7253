package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"solar-forecast/cmd/internal/httpclient"
	"solar-forecast/cmd/server/intent"
)

// Default endpoints of the Open-Meteo API family, keyed by query type.
var defaultEndpoints = map[intent.APIType]string{
	intent.TypeForecast:   "https://api.open-meteo.com/v1/forecast",
	intent.TypeArchive:    "https://archive-api.open-meteo.com/v1/archive",
	intent.TypeMarine:     "https://marine-api.open-meteo.com/v1/marine",
	intent.TypeAirQuality: "https://air-quality-api.open-meteo.com/v1/air-quality",
	intent.TypeSnow:       "https://snow-api.open-meteo.com/v1/snow",
	intent.TypeClimate:    "https://climate-api.open-meteo.com/v1/climate",
}

// APIError is a non-2xx answer from Open-Meteo. Reason carries the upstream
// "reason"/"error" field when the body was parseable.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("open-meteo request failed: status=%d reason=%s", e.StatusCode, e.Reason)
}

// Client fetches raw weather data from the Open-Meteo API family.
type Client struct {
	httpClient *http.Client
	endpoints  map[intent.APIType]string
	circuit    *gobreaker.CircuitBreaker
}

// New creates a Client with the shared logging http.Client and a circuit
// breaker shielding the Open-Meteo endpoints.
func New() *Client {
	return NewWithClient(httpclient.New(httpclient.Config{Timeout: 20 * time.Second}))
}

// NewWithClient creates a Client around an existing http.Client.
func NewWithClient(httpClient *http.Client) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	endpoints := make(map[intent.APIType]string, len(defaultEndpoints))
	for apiType, endpoint := range defaultEndpoints {
		endpoints[apiType] = endpoint
	}

	return &Client{
		httpClient: httpClient,
		endpoints:  endpoints,
		circuit:    cb,
	}
}

// SetEndpoint overrides the URL used for one query type. Tests point this at
// a local fake server.
func (c *Client) SetEndpoint(apiType intent.APIType, endpoint string) {
	c.endpoints[apiType] = endpoint
}

// Fetch retrieves the raw weather document matching the intent. The returned
// payload is the untouched upstream JSON body.
func (c *Client) Fetch(ctx context.Context, it intent.Intent, lat, lon float64, forecastDays int) (json.RawMessage, error) {
	endpoint, ok := c.endpoints[it.APIType]
	if !ok {
		return nil, fmt.Errorf("open-meteo: no endpoint for query type %q", it.APIType)
	}

	params := BuildParams(it, lat, lon, forecastDays)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		const maxBodySize = 10 * 1024 * 1024
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if readErr != nil {
			return nil, fmt.Errorf("open-meteo response read failed: %w", readErr)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Reason: extractReason(body)}
		}
		return json.RawMessage(body), nil
	})
	if err != nil {
		return nil, err
	}

	payload, ok := result.(json.RawMessage)
	if !ok {
		return nil, fmt.Errorf("open-meteo: unexpected result type from circuit breaker")
	}
	return payload, nil
}

// extractReason pulls the upstream error description out of a failure body.
// Falls back to the raw body text when it is not the usual JSON envelope.
func extractReason(body []byte) string {
	var envelope struct {
		Reason string `json:"reason"`
		Error  any    `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Reason != "" {
			return envelope.Reason
		}
		if s, ok := envelope.Error.(string); ok && s != "" {
			return s
		}
	}
	return string(body)
}
