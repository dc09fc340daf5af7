package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.RecordHTTPRequest("GET", "/api/events/:id/stats", 200, 15*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/events/:id/stats", 200, 5*time.Millisecond)
	m.RecordHTTPRequest("GET", "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/events/:id/stats", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestRecordSuggestion(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)

	m.RecordSuggestion("cocktail", "fallback", 0)
	m.RecordSuggestion("cocktail", "live", 2*time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.suggestionsTotal.WithLabelValues("cocktail", "fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.suggestionsTotal.WithLabelValues("cocktail", "live")))

	expected := `
# HELP homebar_suggestions_total Total number of suggestion requests by kind and outcome
# TYPE homebar_suggestions_total counter
homebar_suggestions_total{kind="cocktail",outcome="fallback"} 1
homebar_suggestions_total{kind="cocktail",outcome="live"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "homebar_suggestions_total"))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
		m.RecordSuggestion("omakase", "live", time.Second)
	})
}

func TestDoubleRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)
	_, err = New(registry)
	assert.Error(t, err)
}
