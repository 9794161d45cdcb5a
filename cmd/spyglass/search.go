package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"finder-hq/spyglass/pkg/cli"
	"finder-hq/spyglass/pkg/config"
	"finder-hq/spyglass/pkg/formula"
	"finder-hq/spyglass/pkg/history"
	"finder-hq/spyglass/pkg/scan"
)

var searchFlags struct {
	paths      []string
	extensions []string
	mode       string
	unique     bool
	workers    int
	format     string
	quiet      bool
	noHistory  bool
}

var searchCmd = &cobra.Command{
	Use:   "search [formula]",
	Short: "Search files with a boolean formula",
	Long: `Search the configured paths with a boolean formula over the
configured phrases.

The formula is validated first; a blocked formula (syntax error or
contradiction) refuses to scan. In line mode every matching line is
reported with its line number; in document mode each matching file is
reported once with a content snippet.

Examples:
  # Search with the configured formula and paths
  spyglass search

  # Search specific paths with an explicit formula
  spyglass search --path ./src --path ./docs "(A OR B) AND NOT C"

  # Whole-document matching, Go files only
  spyglass search --mode document --ext .go "A AND B"

  # Machine-readable output
  spyglass search --format json "A OR B"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringArrayVar(&searchFlags.paths, "path", nil, "file or directory to scan (repeatable)")
	searchCmd.Flags().StringArrayVar(&searchFlags.extensions, "ext", nil, "restrict to file extension (repeatable)")
	searchCmd.Flags().StringVar(&searchFlags.mode, "mode", "", "match granularity: line, document")
	searchCmd.Flags().BoolVar(&searchFlags.unique, "unique", false, "suppress duplicate matches")
	searchCmd.Flags().IntVar(&searchFlags.workers, "workers", 0, "concurrent file scanners (default: CPU count)")
	searchCmd.Flags().StringVar(&searchFlags.format, "format", "text", "output format: text, json, csv")
	searchCmd.Flags().BoolVarP(&searchFlags.quiet, "quiet", "q", false, "suppress progress output")
	searchCmd.Flags().BoolVar(&searchFlags.noHistory, "no-history", false, "do not record this run in history")
}

// SearchResult is the machine-readable outcome of one search.
type SearchResult struct {
	Formula string       `json:"formula"`
	Matches []scan.Match `json:"matches"`
	Summary scan.Summary `json:"summary"`
}

// CSVHeader implements cli.Tabular.
func (r SearchResult) CSVHeader() []string {
	return []string{"file", "line", "text"}
}

// CSVRows implements cli.Tabular.
func (r SearchResult) CSVRows() [][]string {
	rows := make([][]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		rows = append(rows, []string{m.File, strconv.Itoa(m.Line), m.Text})
	}
	return rows
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(searchFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	params, compiled, err := buildScanParams(cfg, args)
	if err != nil {
		return err
	}

	ctx := cli.SetupSignalHandler()

	// Progress goes to stderr in text mode so stdout stays parseable.
	var (
		progress     cli.ProgressReporter = cli.QuietProgress{}
		progressOnce sync.Once
	)
	if format == cli.FormatText && !searchFlags.quiet {
		progress = cli.NewProgressReporter(os.Stderr)
	}
	params.Progress = func(scanned, total int) {
		progressOnce.Do(func() { progress.Start(int64(total)) })
		progress.Update(int64(scanned))
	}

	var (
		mu      sync.Mutex
		matches []scan.Match
	)
	scanner := scan.NewScanner(logger, nil)
	startedAt := time.Now()
	summary, err := scanner.Run(ctx, params, func(m scan.Match) {
		mu.Lock()
		defer mu.Unlock()
		matches = append(matches, m)
	})
	progress.Finish()
	if err != nil {
		return cli.NewCommandError("search", err)
	}

	result := SearchResult{
		Formula: compiled.Source(),
		Matches: matches,
		Summary: summary,
	}

	if format == cli.FormatText {
		printSearchText(result, params.Mode)
	} else {
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, result); err != nil {
			return err
		}
	}

	if cfg.History.Enabled && !searchFlags.noHistory {
		if err := recordRun(ctx, cfg, params, summary, startedAt); err != nil {
			logger.Warn("failed to record scan run", "error", err)
		}
	}

	return nil
}

// buildScanParams merges config and flags into scan parameters. The
// formula is validated; a blocked formula is refused with its
// suggestions printed to stderr.
func buildScanParams(cfg *config.Config, args []string) (scan.Params, *formula.CompiledFormula, error) {
	text, err := resolveFormula(cfg, args)
	if err != nil {
		return scan.Params{}, nil, err
	}

	bindings := buildBindings(cfg)
	alphabet := formula.WithAlphabet(compileAlphabet(cfg))
	validation := formula.Validate(text, bindings.Texts(), alphabet)
	if validation.Blocked() {
		for _, d := range validation.Diagnostics() {
			fmt.Fprintf(os.Stderr, "✗ %s\n", d.Message)
		}
		for _, s := range formula.Suggest(validation.Diagnostics()) {
			fmt.Fprintf(os.Stderr, "  - %s\n", s)
		}
		return scan.Params{}, nil, fmt.Errorf("formula %q is blocked; run \"spyglass check\" for details", text)
	}

	compiled, err := formula.Compile(text, alphabet)
	if err != nil {
		return scan.Params{}, nil, err
	}

	params := scan.Params{
		Formula:    compiled,
		Bindings:   bindings,
		Paths:      cfg.Scan.Paths,
		Extensions: cfg.Scan.Extensions,
		Mode:       scan.Mode(cfg.Scan.Mode),
		Unique:     cfg.Scan.Unique,
		Workers:    cfg.Scan.Workers,
	}
	if len(searchFlags.paths) > 0 {
		params.Paths = searchFlags.paths
	}
	if len(searchFlags.extensions) > 0 {
		params.Extensions = searchFlags.extensions
	}
	if searchFlags.mode != "" {
		params.Mode = scan.Mode(searchFlags.mode)
	}
	if searchFlags.unique {
		params.Unique = true
	}
	if searchFlags.workers > 0 {
		params.Workers = searchFlags.workers
	}

	if params.Mode != scan.ModeLine && params.Mode != scan.ModeDocument {
		return scan.Params{}, nil, fmt.Errorf("invalid mode %q (want line or document)", params.Mode)
	}
	if len(params.Paths) == 0 {
		return scan.Params{}, nil, fmt.Errorf("no paths to scan; pass --path or configure scan.paths")
	}

	return params, compiled, nil
}

func printSearchText(result SearchResult, mode scan.Mode) {
	for _, m := range result.Matches {
		switch {
		case m.Err != nil:
			fmt.Printf("%s: error: %v\n", m.File, m.Err)
		case mode == scan.ModeLine:
			fmt.Printf("%s:%d: %s\n", m.File, m.Line, m.Text)
		default:
			fmt.Printf("%s: %s\n", m.File, m.Text)
		}
	}

	fmt.Printf("\n%d match(es) in %d file(s), %d error(s), %s\n",
		result.Summary.Matches,
		result.Summary.FilesScanned,
		result.Summary.FilesErrored,
		result.Summary.Duration.Round(time.Millisecond),
	)
}

// recordRun appends one finished scan to the history database.
func recordRun(ctx context.Context, cfg *config.Config, params scan.Params, summary scan.Summary, startedAt time.Time) error {
	storage, err := history.NewSQLiteStorage(history.SQLiteConfig{Path: cfg.History.Path})
	if err != nil {
		return err
	}
	defer storage.Close()

	return storage.SaveRun(ctx, history.NewRecord(params, summary, startedAt))
}
