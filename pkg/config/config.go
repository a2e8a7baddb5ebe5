package config

import "time"

// Config is the root configuration structure for speclint.
// It contains all configuration sections for the validation server,
// import registry, lint behavior, and telemetry.
type Config struct {
	// Server contains HTTP validation server configuration including
	// listen address, timeouts, and request size limits.
	Server ServerConfig `yaml:"server"`

	// Registry contains configuration for the import registry: which
	// backend caches imported documents and how they are fetched and
	// refreshed.
	Registry RegistryConfig `yaml:"registry"`

	// Lint contains configuration for the lint command including output
	// format and watch-mode behavior.
	Lint LintConfig `yaml:"lint"`

	// Telemetry contains configuration for observability including
	// logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP validation server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:7411", "0.0.0.0:7411").
	// Default: "127.0.0.1:7411"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. A zero or negative value means no timeout.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled. If IdleTimeout is zero,
	// ReadTimeout is used.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown before in-flight validations are abandoned.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes caps the size of a submitted specification document.
	// Default: 10485760 (10MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// RegistryConfig contains configuration for the import registry.
type RegistryConfig struct {
	// Backend selects where imported documents are cached.
	// Valid values: "memory", "sqlite".
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLitePath is the path to the SQLite database file. Only used when
	// Backend is "sqlite".
	// Default: "data/registry.db"
	SQLitePath string `yaml:"sqlite_path"`

	// FetchTimeout bounds each HTTP fetch of an imported document.
	// Default: 10s
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// MaxAge is how long a cached import is served without refetching.
	// Zero means cached imports never expire on read; the refresh
	// schedule keeps them current instead.
	// Default: 0
	MaxAge time.Duration `yaml:"max_age"`

	// RefreshSchedule is a standard cron expression controlling periodic
	// re-fetching of every cached import in server mode. Empty disables
	// scheduled refreshing.
	// Default: "" (disabled)
	RefreshSchedule string `yaml:"refresh_schedule"`
}

// LintConfig contains configuration for the lint command.
type LintConfig struct {
	// Format selects the diagnostic output format.
	// Valid values: "text", "json".
	// Default: "text"
	Format string `yaml:"format"`

	// DebounceInterval is how long watch mode waits after the last file
	// change before revalidating.
	// Default: 300ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format selects the log output format.
	// Valid values: "json", "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Disabled turns off the metrics endpoint. Metrics are served by
	// default.
	Disabled bool `yaml:"disabled"`

	// Path is the HTTP path the metrics are served on.
	// Default: "/metrics"
	Path string `yaml:"path"`
}
