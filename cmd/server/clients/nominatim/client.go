package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"solar-forecast/cmd/internal/httpclient"
	"solar-forecast/dto"
)

const userAgent = "SolarForecastApp/1.0"

// ErrNotFound means the query matched no known place.
var ErrNotFound = errors.New("location not found")

// HTTPError is a non-2xx answer from Nominatim.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("nominatim request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// Client resolves free-text place names to coordinates using OpenStreetMap's
// Nominatim service.
type Client struct {
	base *httpclient.BaseClient
}

// New creates a Client. The base URL can be overridden with
// NOMINATIM_BASE_URL (tests point it at a local fake server).
func New() *Client {
	base := os.Getenv("NOMINATIM_BASE_URL")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}

	httpClient := httpclient.New(httpclient.Config{Timeout: 15 * time.Second})
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, base)}
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode looks up the best match for the query and returns it as a Location.
// City is the first segment of the display name, per Nominatim's convention.
func (c *Client) Geocode(ctx context.Context, query string) (dto.Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/search", params, nil)
	if err != nil {
		return dto.Location{}, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return dto.Location{}, err
	}
	defer resp.Body.Close()

	const maxBodySize = 1 * 1024 * 1024
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return dto.Location{}, fmt.Errorf("nominatim response read failed: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		return dto.Location{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return dto.Location{}, err
	}
	if len(results) == 0 {
		return dto.Location{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return dto.Location{}, fmt.Errorf("nominatim returned invalid latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return dto.Location{}, fmt.Errorf("nominatim returned invalid longitude %q", results[0].Lon)
	}

	city := results[0].DisplayName
	if idx := strings.Index(city, ","); idx >= 0 {
		city = city[:idx]
	}

	return dto.Location{
		City:        city,
		Coordinates: dto.Coordinates{Lat: lat, Lon: lon},
	}, nil
}
