// Package metrics holds the service's Prometheus instruments on a
// dedicated registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// GroupingPassDuration records full layered-suggestion pass durations.
	GroupingPassDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "grouping_pass_duration_seconds", Help: "Layered suggestion pass duration in seconds.", Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}},
	)
	// SuggestionsGenerated counts suggestions produced per tier.
	SuggestionsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "grouping_suggestions_total", Help: "Merge suggestions generated by tier."},
		[]string{"tier"},
	)
	// MergesSelected counts merges surviving conflict-free selection.
	MergesSelected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "grouping_merges_selected_total", Help: "Selected conflict-free merges."},
	)

	// DurationCacheHits counts zip-pair duration cache hits and misses.
	DurationCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "duration_cache_requests_total", Help: "Duration cache lookups by outcome."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// Register installs all instruments plus the standard Go and process
// collectors on the registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(GroupingPassDuration)
		Registry.MustRegister(SuggestionsGenerated)
		Registry.MustRegister(MergesSelected)
		Registry.MustRegister(DurationCacheHits)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
