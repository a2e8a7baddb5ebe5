// Package config provides configuration management for speclint.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// Running without a file at all uses config.DefaultConfig, which applies
// every default and then the environment overrides.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention SPECLINT_SECTION_FIELD.
// For example:
//
//   - SPECLINT_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - SPECLINT_REGISTRY_BACKEND overrides registry.backend
//   - SPECLINT_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	server:
//	  listen_address: "127.0.0.1:7411"
//
//	registry:
//	  backend: "sqlite"
//	  sqlite_path: "data/registry.db"
//	  refresh_schedule: "0 * * * *"
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//
// # Validation
//
// All configuration is validated automatically during loading. Validation
// errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - server.listen_address: invalid listen address: address 7411: missing port in address
//	  - registry.backend: unknown backend "redis", must be one of: memory, sqlite
package config
