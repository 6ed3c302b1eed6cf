package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the piggytree service

var (
	// Player lookup metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piggytree_lookups_total",
			Help: "Total number of player lookups",
		},
		[]string{"league", "outcome"},
	)

	// ESPN API call metrics
	ESPNCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piggytree_espn_calls_total",
			Help: "Total number of ESPN API calls",
		},
		[]string{"endpoint", "status"},
	)

	ESPNCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "piggytree_espn_call_duration_seconds",
			Help:    "Duration of ESPN API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Entry store metrics
	EntryMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piggytree_entry_mutations_total",
			Help: "Total number of entry store mutations",
		},
		[]string{"operation"},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "piggytree_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
