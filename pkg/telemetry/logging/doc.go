// Package logging provides structured logging for speclint on top of
// log/slog.
//
// A Logger is configured with a level and an output format (JSON or text)
// and can be installed as the process-wide slog default so that components
// without an explicit logger reference share the same output. Context
// helpers carry the request ID, the document being validated, and the
// import URI being fetched, and the *Context logging methods surface those
// fields automatically.
package logging
