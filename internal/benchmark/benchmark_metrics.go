package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryDuration is the wall clock time of one variant.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salarybench_query_duration_seconds",
			Help:    "Latest salary query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"variant"},
	)
	// QueryRows is the row count of the most recent run per variant and department.
	QueryRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salarybench_query_rows",
			Help: "Rows returned by the latest run of a variant",
		},
		[]string{"variant", "department"},
	)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salarybench_runs_total",
			Help: "Total number of benchmark runs",
		},
		[]string{"status"},
	)
	DivergencesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salarybench_divergences_total",
			Help: "Runs where a variant disagreed with the naive row count",
		},
		[]string{"variant"},
	)
)
