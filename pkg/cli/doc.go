/*
Package cli provides command-line interface utilities for speclint.

The cli package includes output formatters, progress reporters, and common
CLI helpers used by the speclint command.

Output Formatting:

The cli package supports text and JSON output formats for displaying lint
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Progress Reporting:

When linting a directory of documents, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stdout)
	progress.Start(int64(len(paths)))
	for i, path := range paths {
		// Lint path
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
