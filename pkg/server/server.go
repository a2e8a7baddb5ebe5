package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/speclint/speclint/pkg/config"
	"github.com/speclint/speclint/pkg/idl/validator"
	"github.com/speclint/speclint/pkg/registry"
	"github.com/speclint/speclint/pkg/telemetry/health"
	"github.com/speclint/speclint/pkg/telemetry/metrics"
)

// Server is the HTTP validation server. It exposes the validate endpoint,
// the cached import listing, health probes, and Prometheus metrics.
type Server struct {
	config       *config.ServerConfig
	metricsCfg   *config.MetricsConfig
	importer     validator.Importer
	backend      registry.Backend
	metrics      *metrics.Collector
	checker      *health.Checker
	version      VersionInfo
	maxBodyBytes int64

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// VersionInfo carries build information for the version endpoint.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Options configures a Server.
type Options struct {
	// Config is the server section of the configuration. Required.
	Config *config.ServerConfig

	// MetricsConfig is the telemetry metrics section. Optional; nil
	// disables the metrics endpoint.
	MetricsConfig *config.MetricsConfig

	// Importer resolves import URIs during validation. Optional.
	Importer validator.Importer

	// Backend is the registry backend behind the importer, used for the
	// import listing and the readiness check. Optional.
	Backend registry.Backend

	// Metrics records validation metrics. Optional.
	Metrics *metrics.Collector

	// Version is reported by the version endpoint.
	Version VersionInfo
}

// NewServer creates a new validation server.
func NewServer(opts Options) *Server {
	checker := health.New(0)
	if opts.Backend != nil {
		checker.RegisterCheck("registry", func(ctx context.Context) error {
			_, err := opts.Backend.List(ctx)
			return err
		})
	}

	return &Server{
		config:       opts.Config,
		metricsCfg:   opts.MetricsConfig,
		importer:     opts.Importer,
		backend:      opts.Backend,
		metrics:      opts.Metrics,
		checker:      checker,
		version:      opts.Version,
		maxBodyBytes: opts.Config.MaxBodyBytes,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting validation server",
			"address", s.config.ListenAddress,
		)

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("validation server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/validate", s.handleValidate)
	mux.HandleFunc("/v1/imports", s.handleImports)
	mux.HandleFunc("/health", s.checker.LivenessHandler())
	mux.HandleFunc("/ready", s.checker.ReadinessHandler())
	mux.HandleFunc("/version", health.VersionHandler(
		s.version.Version, s.version.Commit, s.version.BuildTime))

	if s.metrics != nil && s.metricsCfg != nil && !s.metricsCfg.Disabled {
		mux.Handle(s.metricsCfg.Path, s.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = RequestIDMiddleware(handler)
	handler = LoggingMiddleware(handler)
	handler = RecoveryMiddleware(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
