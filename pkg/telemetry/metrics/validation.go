package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ValidationMetrics tracks metrics related to validation runs.
//
// Metrics:
//   - speclint_validations_total: Total validation count by source, outcome
//   - speclint_validation_duration_seconds: Validation duration histogram
//   - speclint_diagnostics_total: Total diagnostics emitted
//   - speclint_document_size_bytes: Submitted document size histogram
type ValidationMetrics struct {
	validationsTotal *prometheus.CounterVec

	validationDuration *prometheus.HistogramVec

	diagnosticsTotal *prometheus.CounterVec

	documentSize prometheus.Histogram
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "speclint",
				Name:      "validations_total",
				Help:      "Total number of specification documents validated",
			},
			[]string{"source", "outcome"},
		),

		validationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "speclint",
				Name:      "validation_duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"source"},
		),

		diagnosticsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "speclint",
				Name:      "diagnostics_total",
				Help:      "Total number of diagnostics emitted",
			},
			[]string{"source"},
		),

		documentSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "speclint",
				Name:      "document_size_bytes",
				Help:      "Size of submitted specification documents in bytes",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4GB
			},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.validationDuration,
		vm.diagnosticsTotal,
		vm.documentSize,
	)

	return vm
}

// Record records metrics for a completed validation run.
func (vm *ValidationMetrics) Record(source, outcome string, duration time.Duration, diagnostics, sizeBytes int) {
	vm.validationsTotal.WithLabelValues(source, outcome).Inc()
	vm.validationDuration.WithLabelValues(source).Observe(duration.Seconds())

	if diagnostics > 0 {
		vm.diagnosticsTotal.WithLabelValues(source).Add(float64(diagnostics))
	}
	if sizeBytes > 0 {
		vm.documentSize.Observe(float64(sizeBytes))
	}
}
