// Package metrics registers the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by the service and its collaborators.
type Metrics struct {
	RPCRequests     *prometheus.CounterVec
	RPCDuration     *prometheus.HistogramVec
	WeatherCache    *prometheus.CounterVec
	OutgrownFlagged prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "littlewardrobe",
			Name:      "rpc_requests_total",
			Help:      "RPC calls handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "littlewardrobe",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "littlewardrobe",
			Name:      "weather_cache_total",
			Help:      "Weather lookups served from cache (hit) or upstream (miss).",
		}, []string{"result"}),
		OutgrownFlagged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "littlewardrobe",
			Name:      "outgrown_items",
			Help:      "Items flagged as outgrown by the most recent check.",
		}),
	}
	reg.MustRegister(m.RPCRequests, m.RPCDuration, m.WeatherCache, m.OutgrownFlagged)
	return m
}

// CacheHit records a weather lookup answered from cache. Safe on a nil receiver.
func (m *Metrics) CacheHit() {
	if m != nil {
		m.WeatherCache.WithLabelValues("hit").Inc()
	}
}

// CacheMiss records a weather lookup that went upstream. Safe on a nil receiver.
func (m *Metrics) CacheMiss() {
	if m != nil {
		m.WeatherCache.WithLabelValues("miss").Inc()
	}
}

// SetOutgrown records the size of the latest outgrown result. Safe on a nil receiver.
func (m *Metrics) SetOutgrown(n int) {
	if m != nil {
		m.OutgrownFlagged.Set(float64(n))
	}
}
