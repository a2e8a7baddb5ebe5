// Package metrics provides Prometheus metrics for speclint.
//
// The Collector owns a Prometheus registry and the metric subsystems:
// validation metrics (run counts, durations, diagnostic counts, document
// sizes) and import metrics (fetch counts and durations). Its Handler
// method exposes the registry in the standard exposition format for the
// server's metrics endpoint.
//
//	collector := metrics.NewCollector(nil)
//	collector.RecordValidation("http", "invalid", elapsed, 3, len(body))
//	http.Handle("/metrics", collector.Handler())
package metrics
