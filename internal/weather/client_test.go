package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Current(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expected      *domain.Weather
		expectedError error
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/weather", r.URL.Path)
				assert.Equal(t, "Da Nang", r.URL.Query().Get("q"))
				assert.Equal(t, "secret", r.URL.Query().Get("appid"))
				assert.Equal(t, "metric", r.URL.Query().Get("units"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"name":"Da Nang","main":{"temp":33.4},"weather":[{"main":"Clear"}]}`))
			},
			expected: &domain.Weather{Temperature: 33.4, Condition: "clear", City: "Da Nang"},
		},
		{
			name: "missing_name_uses_configured_city",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"main":{"temp":18},"weather":[]}`))
			},
			expected: &domain.Weather{Temperature: 18, City: "Da Nang"},
		},
		{
			name: "upstream_error_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectedError: domain.ErrUpstreamUnavailable,
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"main":`))
			},
			expectedError: domain.ErrUpstreamUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(testCase.handler)
			defer server.Close()

			client := weather.NewClient(weather.Config{APIKey: "secret", City: "Da Nang", BaseURL: server.URL + "/"})
			got, err := client.Current(context.Background())
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestClient_WithoutAPIKey(t *testing.T) {
	_, err := weather.NewClient(weather.Config{}).Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := weather.NewClient(weather.Config{APIKey: "secret", BaseURL: server.URL}).Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
