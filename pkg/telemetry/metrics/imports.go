package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ImportMetrics tracks metrics related to import resolution.
//
// Metrics:
//   - speclint_import_fetches_total: Import fetch count by outcome
//   - speclint_import_fetch_duration_seconds: Fetch duration histogram
type ImportMetrics struct {
	fetchesTotal *prometheus.CounterVec

	fetchDuration prometheus.Histogram
}

// NewImportMetrics creates and registers import metrics with the provided
// registry.
func NewImportMetrics(registry *prometheus.Registry) *ImportMetrics {
	im := &ImportMetrics{
		fetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "speclint",
				Name:      "import_fetches_total",
				Help:      "Total number of import fetch attempts",
			},
			[]string{"outcome"},
		),

		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "speclint",
				Name:      "import_fetch_duration_seconds",
				Help:      "Duration of import fetches in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 30.0},
			},
		),
	}

	registry.MustRegister(
		im.fetchesTotal,
		im.fetchDuration,
	)

	return im
}

// RecordFetch records an import fetch attempt. Duration is only observed
// for fetches that actually went to the network.
func (im *ImportMetrics) RecordFetch(outcome string, duration time.Duration) {
	im.fetchesTotal.WithLabelValues(outcome).Inc()
	if outcome != "cached" {
		im.fetchDuration.Observe(duration.Seconds())
	}
}
