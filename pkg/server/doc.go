// Package server provides the HTTP validation server.
//
// The server exposes:
//
//   - POST /v1/validate: validate a specification document submitted as
//     the request body; responds with the canonical service model or the
//     full ordered diagnostic list
//   - GET /v1/imports: list cached import records
//   - GET /health, /ready, /version: probes and build information
//   - GET /metrics: Prometheus metrics (unless disabled)
//
// Requests pass through a recovery, logging, and request ID middleware
// chain. Shutdown is graceful with a configurable timeout and is triggered
// by SIGINT, SIGTERM, or context cancellation.
package server
