package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Config struct {
	APIKey  string
	City    string
	BaseURL string
	Timeout time.Duration
}

// Client reads current conditions from the OpenWeatherMap API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.City == "" {
		cfg.City = "Hanoi"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   cfg.Timeout,
		},
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

func (c *Client) Current(ctx context.Context) (*domain.Weather, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.ErrWeatherUnavailable
	}
	q := url.Values{}
	q.Set("q", c.cfg.City)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather API returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode weather: %v", domain.ErrUpstreamUnavailable, err)
	}

	condition := ""
	if len(body.Weather) > 0 {
		condition = strings.ToLower(body.Weather[0].Main)
	}
	city := body.Name
	if city == "" {
		city = c.cfg.City
	}
	return &domain.Weather{Temperature: body.Main.Temp, Condition: condition, City: city}, nil
}
