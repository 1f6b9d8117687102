package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsRegistry holds the Prometheus metrics of the dashboard.
type metricsRegistry struct {
	registry    *prometheus.Registry
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram
}

func newMetricsRegistry(storedRuns func() int) *metricsRegistry {
	m := &metricsRegistry{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simfolio_runs_total",
				Help: "Total number of simulation requests by outcome",
			},
			[]string{"outcome"},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "simfolio_run_duration_seconds",
				Help:    "Duration of simulation requests, market data fetch included",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}
	m.registry.MustRegister(
		m.RunsTotal,
		m.RunDuration,
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "simfolio_session_runs",
				Help: "Number of runs kept in the session",
			},
			func() float64 { return float64(storedRuns()) },
		),
	)
	return m
}

// observe records a simulation request that started at start.
func (m *metricsRegistry) observe(outcome string, start time.Time) {
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(time.Since(start).Seconds())
}
