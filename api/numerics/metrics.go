package numerics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numerics_computations_total",
		Help: "Count of numeric computations served over the API, by operation and outcome.",
	}, []string{"operation", "outcome"})
	oracleCallsHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "numerics_guess_oracle_calls",
		Help:    "Oracle calls needed to find a hidden number.",
		Buckets: prometheus.LinearBuckets(1, 2, 16),
	})
	activeGuessSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "numerics_active_guess_sessions",
		Help: "Interactive guess sessions currently held in memory.",
	})
)
