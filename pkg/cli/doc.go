/*
Package cli provides command-line interface utilities for Spyglass.

The cli package includes output formatters, progress reporters, and
common CLI helpers used by the spyglass command.

Output Formatting:

The cli package supports multiple output formats (text, JSON, CSV) for
displaying command results. CSV output requires the result to
implement Tabular:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Progress Reporting:

For long-running scans, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(totalFiles)
	// per file:
	progress.Update(scanned)
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
