package fibonacci

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibonacci_computations_total",
			Help: "Total number of Fibonacci computations",
		},
		[]string{"strategy", "cache_hit"},
	)

	computeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fibonacci_compute_duration_seconds",
			Help:    "Fibonacci computation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
		[]string{"strategy"},
	)

	memoCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fibonacci_memo_cache_entries",
			Help: "Number of positions held in the memo cache",
		},
	)
)

func observeComputation(strategy string, cacheHit bool, seconds float64) {
	computationsTotal.WithLabelValues(strategy, strconv.FormatBool(cacheHit)).Inc()
	computeDuration.WithLabelValues(strategy).Observe(seconds)
}
