package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-forecast/cmd/server/intent"
)

func TestFetchReturnsRawBody(t *testing.T) {
	const payload = `{"latitude":6.5,"longitude":3.4,"daily":{"time":["2024-01-01"]}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "6.5", r.URL.Query().Get("latitude"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("daily"))
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewWithClient(server.Client())
	client.SetEndpoint(intent.TypeForecast, server.URL)

	it := intent.Intent{APIType: intent.TypeForecast, TimeFrame: intent.TimeDaily}
	body, err := client.Fetch(context.Background(), it, 6.5, 3.4, 3)

	require.NoError(t, err)
	assert.JSONEq(t, payload, string(body))
}

func TestFetchExtractsUpstreamReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90"}`))
	}))
	defer server.Close()

	client := NewWithClient(server.Client())
	client.SetEndpoint(intent.TypeForecast, server.URL)

	_, err := client.Fetch(context.Background(), intent.Intent{APIType: intent.TypeForecast}, 200, 0, 3)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Latitude must be in range of -90 to 90", apiErr.Reason)
}

func TestFetchNonJSONFailureBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	}))
	defer server.Close()

	client := NewWithClient(server.Client())
	client.SetEndpoint(intent.TypeMarine, server.URL)

	_, err := client.Fetch(context.Background(), intent.Intent{APIType: intent.TypeMarine}, 0, 0, 0)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "maintenance", apiErr.Reason)
}

func TestFetchUnknownAPIType(t *testing.T) {
	client := NewWithClient(http.DefaultClient)

	_, err := client.Fetch(context.Background(), intent.Intent{APIType: "volcano"}, 0, 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no endpoint")
}
