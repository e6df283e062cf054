package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/littlewardrobe/internal/metrics"
	"github.com/mmynk/littlewardrobe/internal/models"
)

func TestClient_Current(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("latitude"); got != "52.5200" {
			t.Errorf("latitude = %s, want 52.5200", got)
		}
		if got := r.URL.Query().Get("current"); got != "temperature_2m,weather_code" {
			t.Errorf("current = %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"current":{"time":"2025-01-01T12:00","temperature_2m":3.5,"weather_code":71}}`)
	}))
	defer server.Close()

	m := metrics.New(prometheus.NewRegistry())
	client := NewClient(Config{BaseURL: server.URL}, m)
	loc := models.Location{Name: "Berlin", Latitude: 52.52, Longitude: 13.405}

	report, err := client.Current(context.Background(), loc)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if report.TemperatureC != 3.5 {
		t.Errorf("TemperatureC = %v, want 3.5", report.TemperatureC)
	}
	if report.Condition != models.ConditionSnow {
		t.Errorf("Condition = %s, want Snow", report.Condition)
	}
	if report.FetchedAt == 0 {
		t.Error("Expected FetchedAt to be set")
	}

	// Second call is served from cache.
	if _, err := client.Current(context.Background(), loc); err != nil {
		t.Fatalf("Current (cached) failed: %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
	if got := testutil.ToFloat64(m.WeatherCache.WithLabelValues("hit")); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
}

func TestClient_Current_NearbyLocationsNotShared(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		temp := "10"
		if r.URL.Query().Get("latitude") == "52.5240" {
			temp = "20"
		}
		fmt.Fprintf(w, `{"current":{"temperature_2m":%s,"weather_code":0}}`, temp)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)
	// About 450m apart: same cell at 2 decimals, distinct at 4.
	first, err := client.Current(context.Background(), models.Location{Latitude: 52.5200, Longitude: 13.4050})
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	second, err := client.Current(context.Background(), models.Location{Latitude: 52.5240, Longitude: 13.4050})
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	if calls.Load() != 2 {
		t.Errorf("upstream calls = %d, want 2", calls.Load())
	}
	if first.TemperatureC != 10 || second.TemperatureC != 20 {
		t.Errorf("temperatures = %v, %v, want 10, 20", first.TemperatureC, second.TemperatureC)
	}
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(models.Location{Latitude: 52.52, Longitude: 13.405})
	b := cacheKey(models.Location{Latitude: 52.52001, Longitude: 13.40501})
	c := cacheKey(models.Location{Latitude: 52.5240, Longitude: 13.405})
	if a != b {
		t.Errorf("keys differ below request precision: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("distinct request points share key %s", a)
	}
}

func TestClient_Current_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"reason":"bad latitude"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)
	_, err := client.Current(context.Background(), models.Location{Latitude: 999})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
}

func TestClient_Current_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)
	if _, err := client.Current(context.Background(), models.Location{}); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want models.WeatherCondition
	}{
		{0, models.ConditionClear},
		{3, models.ConditionCloudy},
		{45, models.ConditionFog},
		{53, models.ConditionDrizzle},
		{63, models.ConditionRain},
		{81, models.ConditionRain},
		{75, models.ConditionSnow},
		{95, models.ConditionThunderstorm},
		{42, models.ConditionUnknown},
	}
	for _, tt := range tests {
		if got, _ := describe(tt.code); got != tt.want {
			t.Errorf("describe(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}
