// Package metrics holds the Prometheus collectors for the HTTP surface and
// the suggestion gateway.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every homebar collector. It registers itself as a single
// collector so one registry call covers all of them.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	suggestionsTotal   *prometheus.CounterVec
	suggestionDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on registry. A nil registry
// gets a fresh one.
func New(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homebar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homebar_http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.suggestionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homebar_suggestions_total",
			Help: "Total number of suggestion requests by kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: live, fallback, parse_error, transport_error
	)

	m.suggestionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homebar_suggestion_duration_seconds",
			Help:    "Time spent waiting on the language model",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 250ms to 32s
		},
		[]string{"kind"},
	)
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.suggestionsTotal,
		m.suggestionDuration,
	}
}

// Describe implements the Collector interface
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.collectors() {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.collectors() {
		collector.Collect(ch)
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one finished request. route is the matched
// route pattern, not the raw path.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSuggestion records one gateway call. Duration is only observed for
// calls that reached the model.
func (m *Metrics) RecordSuggestion(kind, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.suggestionsTotal.WithLabelValues(kind, outcome).Inc()
	if duration > 0 {
		m.suggestionDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}
