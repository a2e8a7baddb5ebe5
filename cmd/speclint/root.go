package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speclint/speclint/pkg/config"
	"github.com/speclint/speclint/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "speclint",
	Short: "Speclint - service specification validator",
	Long: `Speclint validates JSON service specification documents.

A specification describes a REST-style service: models, enums, unions,
resources with operations, parameters, responses, headers, and imports of
other specifications. Speclint checks documents against the full rule set
and reports every diagnostic found, either from the command line or as an
HTTP validation server.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file when one is given and falls back
// to defaults with environment overrides otherwise.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// setupLogging installs the configured logger as the process default. The
// verbose flag forces debug level.
func setupLogging(cfg *config.Config) error {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return err
	}
	logger.SetDefault()

	return nil
}
