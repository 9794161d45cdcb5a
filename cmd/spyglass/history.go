package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"finder-hq/spyglass/pkg/cli"
	"finder-hq/spyglass/pkg/config"
	"finder-hq/spyglass/pkg/history"
)

var historyFlags struct {
	limit  int
	since  time.Duration
	format string
}

var historyPruneFlags struct {
	olderThan int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past scan runs",
	Long: `List scan runs recorded in the history database.

History is recorded when history.enabled is set in the configuration.
Matches themselves are not stored, only what was searched and how much
came back.

Examples:
  # The ten most recent runs
  spyglass history --limit 10

  # Runs from the last day
  spyglass history --since 24h

  # CSV export
  spyglass history --format csv`,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old scan runs",
	Long: `Delete scan runs older than the retention period.

The cutoff comes from history.retention_days unless --older-than is
given. Watch mode prunes automatically when history.prune_schedule is
configured; this command is the manual equivalent.`,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum runs to list (0 for all)")
	historyCmd.Flags().DurationVar(&historyFlags.since, "since", 0, "only runs newer than this age, e.g. 24h")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json, csv")

	historyPruneCmd.Flags().IntVar(&historyPruneFlags.olderThan, "older-than", 0, "delete runs older than this many days (default: history.retention_days)")
}

// HistoryResult wraps listed runs for formatting.
type HistoryResult struct {
	Runs []*history.Record `json:"runs"`
}

// CSVHeader implements cli.Tabular.
func (r HistoryResult) CSVHeader() []string {
	return []string{"id", "started_at", "formula", "mode", "files_scanned", "matches", "duration_ms"}
}

// CSVRows implements cli.Tabular.
func (r HistoryResult) CSVRows() [][]string {
	rows := make([][]string, 0, len(r.Runs))
	for _, run := range r.Runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Format(time.RFC3339),
			run.Formula,
			run.Mode,
			strconv.Itoa(run.FilesScanned),
			strconv.Itoa(run.MatchCount),
			strconv.FormatInt(run.Duration.Milliseconds(), 10),
		})
	}
	return rows
}

// openHistory opens the configured history database. The history
// command works even when recording is disabled, as long as the
// database file exists.
func openHistory(cfg *config.Config) (*history.SQLiteStorage, error) {
	if _, err := os.Stat(cfg.History.Path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no history database at %q; enable history and run a search first", cfg.History.Path)
	}
	return history.NewSQLiteStorage(history.SQLiteConfig{Path: cfg.History.Path})
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(historyFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	storage, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	ctx := cmd.Context()
	var runs []*history.Record
	if historyFlags.since > 0 {
		runs, err = storage.RunsSince(ctx, time.Now().Add(-historyFlags.since))
		if err == nil && historyFlags.limit > 0 && len(runs) > historyFlags.limit {
			runs = runs[:historyFlags.limit]
		}
	} else {
		runs, err = storage.ListRuns(ctx, historyFlags.limit)
	}
	if err != nil {
		return err
	}

	result := HistoryResult{Runs: runs}
	if format == cli.FormatText {
		printHistoryText(result)
		return nil
	}
	return cli.NewFormatter(format).FormatTo(os.Stdout, result)
}

func printHistoryText(result HistoryResult) {
	if len(result.Runs) == 0 {
		fmt.Println("No scan runs recorded.")
		return
	}

	for _, run := range result.Runs {
		fmt.Printf("%s  %q\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.Formula)
		fmt.Printf("    %d match(es) in %d file(s), %d error(s), %s [%s mode]\n",
			run.MatchCount,
			run.FilesScanned,
			run.FilesErrored,
			run.Duration.Round(time.Millisecond),
			run.Mode,
		)
		for _, path := range run.Paths {
			fmt.Printf("    path: %s\n", path)
		}
	}
	fmt.Printf("\n%d run(s)\n", len(result.Runs))
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	days := cfg.History.RetentionDays
	if historyPruneFlags.olderThan > 0 {
		days = historyPruneFlags.olderThan
	}
	if days <= 0 {
		return fmt.Errorf("no retention period; set history.retention_days or pass --older-than")
	}

	storage, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	pruner := history.NewPruner(storage, history.RetentionConfig{RetentionDays: days}, logger)
	pruned, err := pruner.Prune(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d run(s) older than %d day(s).\n", pruned, days)
	return nil
}
