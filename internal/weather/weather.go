// Package weather fetches current conditions from an Open-Meteo compatible API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/mmynk/littlewardrobe/internal/metrics"
	"github.com/mmynk/littlewardrobe/internal/models"
)

const (
	defaultBaseURL  = "https://api.open-meteo.com"
	defaultCacheTTL = 15 * time.Minute
	cacheSize       = 64
)

// Provider returns the current weather for a location.
type Provider interface {
	Current(ctx context.Context, loc models.Location) (*models.WeatherReport, error)
}

// Config configures a Client. Zero values fall back to defaults.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerMinute int
}

// APIError is returned when the provider answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather API error %d: %s", e.StatusCode, e.Body)
}

// Client is the Open-Meteo forecast API client. Results are cached per
// location and upstream calls are rate limited.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, models.WeatherReport]
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
	now        func() time.Time
}

var _ Provider = (*Client)(nil)

// NewClient creates a weather client. m may be nil.
func NewClient(cfg Config, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      expirable.NewLRU[string, models.WeatherReport](cacheSize, nil, cfg.CacheTTL),
		limiter:    rate.NewLimiter(limit, 1),
		metrics:    m,
		now:        time.Now,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// Current returns the weather at loc, from cache when fresh.
func (c *Client) Current(ctx context.Context, loc models.Location) (*models.WeatherReport, error) {
	key := cacheKey(loc)
	if report, ok := c.cache.Get(key); ok {
		c.metrics.CacheHit()
		return &report, nil
	}
	c.metrics.CacheMiss()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("weather rate limit: %w", err)
	}

	q := url.Values{}
	q.Set("latitude", formatCoord(loc.Latitude))
	q.Set("longitude", formatCoord(loc.Longitude))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("temperature_unit", "celsius")
	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition, description := describe(result.Current.WeatherCode)
	report := models.WeatherReport{
		Condition:    condition,
		TemperatureC: result.Current.Temperature,
		Description:  description,
		FetchedAt:    c.now().Unix(),
	}
	c.cache.Add(key, report)

	slog.Debug("Weather fetched",
		"location", loc.Name,
		"temperature_c", report.TemperatureC,
		"condition", report.Condition,
	)
	return &report, nil
}

// cacheKey uses the same precision as the request, so locations share an
// entry only when they would query the same point.
func cacheKey(loc models.Location) string {
	return formatCoord(loc.Latitude) + "," + formatCoord(loc.Longitude)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
