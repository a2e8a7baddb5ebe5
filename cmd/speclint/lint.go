package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speclint/speclint/pkg/cli"
	"github.com/speclint/speclint/pkg/config"
	"github.com/speclint/speclint/pkg/idl"
	"github.com/speclint/speclint/pkg/idl/validator"
	"github.com/speclint/speclint/pkg/registry"
	"github.com/speclint/speclint/pkg/telemetry/logging"
	"github.com/speclint/speclint/pkg/watch"
)

var lintFlags struct {
	file      string
	dir       string
	format    string
	watchMode bool
	noImports bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate specification documents",
	Long: `Validate JSON service specification documents.

The lint command parses specification documents and performs full
validation:
  - JSON syntax validation
  - Required field gate (a document must declare a name)
  - Type resolution for every field, parameter, body, and response
  - Operation rules (methods, path parameters, query shapes)
  - Response rules (codes, 2xx uniformity, reserved codes)
  - Import resolution over HTTP

Examples:
  # Lint single document
  speclint lint --file service.json

  # Lint directory
  speclint lint --dir specs/

  # JSON output for CI/CD
  speclint lint --file service.json --format json

  # Revalidate on every change
  speclint lint --file service.json --watch`,
	RunE: lintDocuments,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "specification document to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of specification documents")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "", "output format: text, json")
	lintCmd.Flags().BoolVarP(&lintFlags.watchMode, "watch", "w", false, "revalidate on file changes")
	lintCmd.Flags().BoolVar(&lintFlags.noImports, "no-imports", false, "check import URIs without fetching them")
}

// ValidationResult represents the validation result for a single document.
type ValidationResult struct {
	File        string   `json:"file"`
	Valid       bool     `json:"valid"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

func lintDocuments(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	if err := setupLogging(cfg); err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	format := cfg.Lint.Format
	if lintFlags.format != "" {
		format = lintFlags.format
	}
	if format != "text" && format != "json" {
		return cli.NewConfigError("lint.format",
			fmt.Sprintf("unknown format %q, must be one of: text, json", format))
	}

	importer, err := buildImporter(cfg)
	if err != nil {
		return cli.NewCommandError("lint", err)
	}

	ctx := cli.SetupSignalHandler()

	if lintFlags.watchMode {
		return lintWatch(ctx, cfg, importer, format)
	}

	// Directory runs can cover many documents; progress goes to stderr so
	// it never mixes with the results on stdout.
	var progress cli.ProgressReporter
	if lintFlags.dir != "" {
		progress = cli.NewProgressReporter(os.Stderr)
	}

	results, err := lintPass(ctx, importer, progress)
	if err != nil {
		return err
	}
	return outputResults(results, format)
}

// buildImporter creates the import resolver for lint runs. One-shot runs
// cache in memory; --no-imports skips fetching entirely.
func buildImporter(cfg *config.Config) (validator.Importer, error) {
	if lintFlags.noImports {
		return nil, nil
	}
	return registry.NewImporter(registry.ImporterConfig{
		Backend:      registry.NewMemoryBackend(),
		FetchTimeout: cfg.Registry.FetchTimeout,
		MaxAge:       cfg.Registry.MaxAge,
	})
}

// collectFiles resolves the --file/--dir flags into the list of documents
// to validate.
func collectFiles() ([]string, error) {
	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		matches, err := filepath.Glob(filepath.Join(lintFlags.dir, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list specification documents: %w", err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no specification documents found")
	}

	return files, nil
}

// lintPass validates every selected document once.
func lintPass(ctx context.Context, importer validator.Importer, progress cli.ProgressReporter) ([]ValidationResult, error) {
	files, err := collectFiles()
	if err != nil {
		return nil, err
	}

	if progress != nil {
		progress.Start(int64(len(files)))
	}

	results := make([]ValidationResult, 0, len(files))
	for n, file := range files {
		results = append(results, validateDocument(ctx, importer, file))
		if progress != nil {
			progress.Update(int64(n + 1))
		}
	}

	if progress != nil {
		progress.Finish()
	}
	return results, nil
}

func validateDocument(ctx context.Context, importer validator.Importer, path string) ValidationResult {
	ctx = logging.WithDocument(ctx, path)

	result := ValidationResult{
		File:  path,
		Valid: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Diagnostics = []string{fmt.Sprintf("failed to read file: %v", err)}
		return result
	}

	if _, err := idl.Validate(ctx, data, importer); err != nil {
		result.Valid = false
		result.Diagnostics = idl.Messages(err)
	}

	return result
}

// lintWatch runs a lint pass, then revalidates after every debounced batch
// of file changes until the context is cancelled.
func lintWatch(ctx context.Context, cfg *config.Config, importer validator.Importer, format string) error {
	path := lintFlags.file
	if path == "" {
		path = lintFlags.dir
	}

	pass := func() error {
		results, err := lintPass(ctx, importer, nil)
		if err != nil {
			return err
		}
		// Watch mode keeps going after failed validation; the exit code
		// only reflects watcher errors.
		_ = outputResults(results, format)
		return nil
	}

	if err := pass(); err != nil {
		return err
	}

	watcherCfg := watch.DefaultFileWatcherConfig()
	watcherCfg.Path = path
	watcherCfg.DebounceInterval = cfg.Lint.DebounceInterval

	watcher, err := watch.NewFileWatcher(watcherCfg, nil)
	if err != nil {
		return cli.NewCommandError("lint", err)
	}

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")

	if err := watcher.Watch(ctx, pass); err != nil {
		return cli.NewCommandError("lint", err)
	}
	return nil
}

func outputResults(results []ValidationResult, format string) error {
	if err := writeResults(os.Stdout, results, format); err != nil {
		return err
	}

	for _, result := range results {
		if !result.Valid {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
	}
	return nil
}

func writeResults(w io.Writer, results []ValidationResult, format string) error {
	formatter := cli.NewFormatter(cli.OutputFormat(format))
	if format == "json" {
		return formatter.FormatTo(w, results)
	}
	return formatter.FormatTo(w, lintReport(results))
}

// lintReport renders the per-document checkmark output and summary line
// for a lint pass.
type lintReport []ValidationResult

func (r lintReport) String() string {
	var b strings.Builder
	totalDiagnostics := 0
	invalidFiles := 0

	for _, result := range r {
		fmt.Fprintf(&b, "Validating %s...\n", result.File)

		if result.Valid {
			b.WriteString("✓ Document valid\n")
		} else {
			invalidFiles++
			for _, msg := range result.Diagnostics {
				fmt.Fprintf(&b, "✗ %s\n", msg)
				totalDiagnostics++
			}
		}

		b.WriteString("\n")
	}

	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  %d document(s), %d invalid, %d diagnostic(s)",
		len(r), invalidFiles, totalDiagnostics)

	return b.String()
}
