// Package telemetry provides observability for speclint.
//
// # Components
//
//   - logging: structured logging on top of log/slog
//   - metrics: Prometheus metrics for validation runs and import fetches
//   - health: liveness, readiness, and version endpoints
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	logger.SetDefault()
//
//	collector := metrics.NewCollector(nil)
//	collector.RecordValidation("http", "valid", elapsed, 0, len(body))
package telemetry
