package queryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"time"

	"solar-forecast/cmd/internal/httpclient"
	"solar-forecast/dto"
)

// requestTimeout bounds how long a chat request may take before it is
// abandoned.
const requestTimeout = 30 * time.Second

// ServiceError is a structured failure envelope returned by the query
// service. Message and Details are surfaced to the user verbatim.
type ServiceError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("query service error: status=%d error=%s details=%s", e.StatusCode, e.Message, e.Details)
}

// ChatResult is a successful answer: either the decoded structured document,
// or the raw body when the response lacks the query_type discriminant.
type ChatResult struct {
	Document *dto.WeatherResponseDocument
	Raw      string
}

// Client talks to the query service's POST /chat/ endpoint.
type Client struct {
	base *httpclient.BaseClient
}

// New creates a Client. The base URL comes from SOLAR_SERVER_BASE_URL and
// defaults to the local server.
func New() *Client {
	base := os.Getenv("SOLAR_SERVER_BASE_URL")
	if base == "" {
		base = "http://localhost:8000"
	}

	httpClient := httpclient.New(httpclient.Config{Timeout: requestTimeout})
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, base)}
}

// NewWithClient creates a Client with an explicit http.Client and base URL.
// Tests use it to shorten the timeout and point at a fake server.
func NewWithClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// Chat sends the message and decodes the reply. Non-2xx answers with a
// structured body become a *ServiceError; other failures are returned as-is.
func (c *Client) Chat(ctx context.Context, message string) (ChatResult, error) {
	payload := dto.ChatRequest{Message: message}
	buf, err := json.Marshal(payload)
	if err != nil {
		return ChatResult{}, err
	}

	// Built by hand rather than via BaseClient.NewRequest: the service
	// serves exactly /chat/ and path.Join would drop the trailing slash.
	base, err := url.Parse(c.base.BaseURL)
	if err != nil {
		return ChatResult{}, err
	}
	base.Path = path.Join(base.Path, "chat") + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String(), bytes.NewReader(buf))
	if err != nil {
		return ChatResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return ChatResult{}, err
	}
	defer resp.Body.Close()

	const maxBodySize = 5 * 1024 * 1024
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return ChatResult{}, fmt.Errorf("query service response read failed: %w", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope dto.ErrorResponse
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
			return ChatResult{}, &ServiceError{
				StatusCode: resp.StatusCode,
				Message:    envelope.Error,
				Details:    envelope.Details,
			}
		}
		return ChatResult{}, fmt.Errorf("query service request failed: status=%d", resp.StatusCode)
	}

	var document dto.WeatherResponseDocument
	if err := json.Unmarshal(body, &document); err != nil || document.QueryType == "" {
		// Unrecognized shape: hand the raw body to the renderer's fallback.
		return ChatResult{Raw: string(body)}, nil
	}
	return ChatResult{Document: &document}, nil
}
