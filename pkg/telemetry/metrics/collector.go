package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the main orchestrator for all Prometheus metrics in
// speclint. It manages metric registration and provides a unified
// interface for recording metrics across all components.
type Collector struct {
	registry *prometheus.Registry

	// Validation metrics
	validationMetrics *ValidationMetrics

	// Import metrics
	importMetrics *ImportMetrics
}

// NewCollector creates a new metrics collector with the specified
// Prometheus registry. If registry is nil, a fresh registry is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
	}

	c.validationMetrics = NewValidationMetrics(registry)
	c.importMetrics = NewImportMetrics(registry)

	return c
}

// RecordValidation records metrics for a completed validation run.
//
// Parameters:
//   - source: where the document came from ("http", "cli", "watch")
//   - outcome: "valid" or "invalid"
//   - duration: total validation duration
//   - diagnostics: number of diagnostics produced
//   - sizeBytes: size of the submitted document
func (c *Collector) RecordValidation(source, outcome string, duration time.Duration, diagnostics, sizeBytes int) {
	c.validationMetrics.Record(source, outcome, duration, diagnostics, sizeBytes)
}

// RecordImportFetch records metrics for an import fetch attempt.
//
// Parameters:
//   - outcome: "success", "error", or "cached"
//   - duration: fetch duration, ignored for cached results
func (c *Collector) RecordImportFetch(outcome string, duration time.Duration) {
	c.importMetrics.RecordFetch(outcome, duration)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
