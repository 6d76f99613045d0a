package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the batch
// forecast driver.
type Metrics struct {
	StepsProcessed prometheus.Counter
	StepErrors     prometheus.Counter

	PartitionsFound prometheus.Histogram
	StepDuration    prometheus.Histogram
}

// NewMetrics creates and registers all driver metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		StepsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "swellgrid",
			Name:      "steps_processed_total",
			Help:      "Total forecast time steps partitioned and summarized.",
		}),
		StepErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "swellgrid",
			Name:      "step_errors_total",
			Help:      "Total time steps dropped because derivation failed.",
		}),
		PartitionsFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swellgrid",
			Name:      "partitions_found",
			Help:      "Number of swell components surviving per time step.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swellgrid",
			Name:      "step_duration_seconds",
			Help:      "Time to partition and summarize one spectrum.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}),
	}

	prometheus.MustRegister(
		m.StepsProcessed,
		m.StepErrors,
		m.PartitionsFound,
		m.StepDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		StepsProcessed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "swellgrid", Name: "steps_processed_total"}),
		StepErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "swellgrid", Name: "step_errors_total"}),
		PartitionsFound: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "swellgrid", Name: "partitions_found"}),
		StepDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "swellgrid", Name: "step_duration_seconds"}),
	}
}
