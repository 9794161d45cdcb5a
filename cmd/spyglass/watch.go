package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"finder-hq/spyglass/pkg/cli"
	"finder-hq/spyglass/pkg/history"
	"finder-hq/spyglass/pkg/scan"
	"finder-hq/spyglass/pkg/scan/watch"
	"finder-hq/spyglass/pkg/telemetry/metrics"
)

var watchCmd = &cobra.Command{
	Use:   "watch [formula]",
	Short: "Rescan whenever watched files change",
	Long: `Watch the configured paths and rerun the search whenever files
change. Bursts of writes are debounced into a single rescan.

Watch mode is long-lived, so it also hosts the optional Prometheus
metrics endpoint and the scheduled history pruning configured under
telemetry.metrics and history.prune_schedule.

Stop with Ctrl-C.

Examples:
  # Watch the configured paths with the configured formula
  spyglass watch

  # Watch with an explicit formula
  spyglass watch "(A OR B) AND NOT C"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	params, _, err := buildScanParams(cfg, args)
	if err != nil {
		return err
	}

	ctx := cli.SetupSignalHandler()

	// Metrics only make sense here; one-shot searches exit before
	// anything could scrape them.
	var scanMetrics *metrics.ScanMetrics
	if cfg.Telemetry.Metrics.Enabled {
		scanMetrics = metrics.NewScanMetrics(metrics.Config{
			Namespace: cfg.Telemetry.Metrics.Namespace,
			Subsystem: cfg.Telemetry.Metrics.Subsystem,
		}, nil)
		mux := http.NewServeMux()
		mux.Handle(cfg.Telemetry.Metrics.Path, scanMetrics.Handler())
		server := &http.Server{
			Addr:    cfg.Telemetry.Metrics.ListenAddress,
			Handler: mux,
		}
		go func() {
			logger.Info("metrics endpoint listening",
				"address", cfg.Telemetry.Metrics.ListenAddress,
				"path", cfg.Telemetry.Metrics.Path,
			)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			server.Shutdown(shutdownCtx)
		}()
	}

	var storage history.Storage
	if cfg.History.Enabled {
		sqlite, err := history.NewSQLiteStorage(history.SQLiteConfig{Path: cfg.History.Path})
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer sqlite.Close()
		storage = sqlite

		pruner := history.NewPruner(storage, history.RetentionConfig{
			RetentionDays: cfg.History.RetentionDays,
			PruneSchedule: cfg.History.PruneSchedule,
		}, logger)
		if err := pruner.Start(ctx); err != nil {
			return err
		}
		defer pruner.Stop()
	}

	scanner := scan.NewScanner(logger, scanMetrics)

	// Rescans run one at a time; the debouncer collapses event bursts
	// but a change arriving mid-scan still queues one more.
	var scanMu sync.Mutex
	rescan := func() {
		scanMu.Lock()
		defer scanMu.Unlock()

		startedAt := time.Now()
		summary, err := scanner.Run(ctx, params, func(m scan.Match) {
			if m.Err != nil {
				fmt.Printf("%s: error: %v\n", m.File, m.Err)
				return
			}
			if params.Mode == scan.ModeLine {
				fmt.Printf("%s:%d: %s\n", m.File, m.Line, m.Text)
			} else {
				fmt.Printf("%s: %s\n", m.File, m.Text)
			}
		})
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("rescan failed", "error", err)
			}
			return
		}
		fmt.Printf("-- %d match(es) in %d file(s), %s\n",
			summary.Matches, summary.FilesScanned, summary.Duration.Round(time.Millisecond))

		if storage != nil {
			if err := storage.SaveRun(ctx, history.NewRecord(params, summary, startedAt)); err != nil {
				logger.Warn("failed to record scan run", "error", err)
			}
		}
	}

	watcher, err := watch.New(watch.Config{
		Paths:            params.Paths,
		Extensions:       params.Extensions,
		DebounceInterval: cfg.Watch.DebounceInterval,
	}, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Initial scan so watch mode starts from a known state.
	rescan()

	if err := watcher.Run(ctx, rescan); err != nil && !errors.Is(err, context.Canceled) {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
