// Package health provides liveness, readiness, and version endpoints for
// the validation server.
//
// Components register CheckFunc callbacks with a Checker (for example a
// registry backend ping). The readiness endpoint runs every registered
// check concurrently with a per-check timeout and reports 503 when any
// component is unhealthy; liveness is a constant-time process check.
package health
