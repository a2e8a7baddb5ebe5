package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speclint/speclint/pkg/cli"
	"github.com/speclint/speclint/pkg/config"
	"github.com/speclint/speclint/pkg/registry"
	"github.com/speclint/speclint/pkg/server"
	"github.com/speclint/speclint/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validation server",
	Long: `Start the HTTP validation server.

The server accepts specification documents on /v1/validate and responds
with the canonical service model or the full diagnostic list. Imported
documents are cached in the configured registry backend and optionally
refreshed on a cron schedule.

Examples:
  # Start with defaults
  speclint serve

  # Start with custom config
  speclint serve --config /etc/speclint/config.yaml

  # Override listen address
  speclint serve --listen 0.0.0.0:7411

  # Validate config without starting server
  speclint serve --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}

	if err := setupLogging(cfg); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if serveFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	// Create registry backend
	backend, err := buildBackend(cfg)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	defer backend.Close()

	var collector *metrics.Collector
	if !cfg.Telemetry.Metrics.Disabled {
		collector = metrics.NewCollector(nil)
	}

	importer, err := registry.NewImporter(registry.ImporterConfig{
		Backend:      backend,
		FetchTimeout: cfg.Registry.FetchTimeout,
		MaxAge:       cfg.Registry.MaxAge,
		Metrics:      collector,
	})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	ctx := cli.SetupSignalHandler()

	// Start the import refresher if a schedule is configured
	if cfg.Registry.RefreshSchedule != "" {
		refresher := registry.NewRefresher(importer, cfg.Registry.RefreshSchedule)
		if err := refresher.Start(ctx); err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer refresher.Stop()
	}

	srv := server.NewServer(server.Options{
		Config:        &cfg.Server,
		MetricsConfig: &cfg.Telemetry.Metrics,
		Importer:      importer,
		Backend:       backend,
		Metrics:       collector,
		Version: server.VersionInfo{
			Version:   Version,
			Commit:    GitCommit,
			BuildTime: BuildDate,
		},
	})

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if !cfg.Telemetry.Metrics.Disabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}

// buildBackend creates the registry backend selected by the
// configuration.
func buildBackend(cfg *config.Config) (registry.Backend, error) {
	switch cfg.Registry.Backend {
	case "sqlite":
		return registry.NewSQLiteBackend(cfg.Registry.SQLitePath)
	case "memory":
		return registry.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported registry backend: %s", cfg.Registry.Backend)
	}
}
