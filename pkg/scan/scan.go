package scan

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"finder-hq/spyglass/pkg/formula"
	"finder-hq/spyglass/pkg/formula/eval"
	"finder-hq/spyglass/pkg/telemetry/metrics"
)

// Mode selects the unit of content a formula is evaluated against.
type Mode string

const (
	// ModeLine evaluates the formula once per line of each file.
	ModeLine Mode = "line"
	// ModeDocument evaluates the formula once against each whole file.
	ModeDocument Mode = "document"
)

// Params describes one scan. The compiled formula and the binding set
// are treated as immutable snapshots: editing phrases mid-scan requires
// cancelling and starting a fresh scan.
type Params struct {
	// Formula is the compiled search formula.
	Formula *formula.CompiledFormula

	// Bindings maps formula letters to phrase text.
	Bindings eval.BindingSet

	// Paths are files or directories to scan; directories are walked
	// recursively.
	Paths []string

	// Extensions filters files by suffix, case-insensitively. Empty
	// means all files.
	Extensions []string

	// Mode is line-by-line or whole-document matching. Default: line.
	Mode Mode

	// Unique suppresses duplicate matches: per file in document mode,
	// per file and trimmed line content in line mode.
	Unique bool

	// Workers is the number of concurrent file scanners. Default:
	// GOMAXPROCS.
	Workers int

	// Progress, when set, is called after each file with the number of
	// files completed and the total.
	Progress func(scanned, total int)
}

// Match is one search hit, or a per-file failure when Err is set.
// Failures are reported as values rather than swallowed so a read error
// is never indistinguishable from a non-match.
type Match struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"` // 0 in document mode
	Text   string `json:"text"`
	Unique bool   `json:"unique"`
	Err    error  `json:"-"`
}

// Summary aggregates the outcome of one scan.
type Summary struct {
	FilesScanned int           `json:"files_scanned"`
	FilesErrored int           `json:"files_errored"`
	Matches      int           `json:"matches"`
	Duration     time.Duration `json:"duration"`
}

// Scanner runs formula scans over the file system. The zero value is
// not usable; construct with NewScanner.
type Scanner struct {
	logger  *slog.Logger
	metrics *metrics.ScanMetrics
}

// NewScanner creates a scanner. logger defaults to slog.Default();
// m may be nil to disable metrics.
func NewScanner(logger *slog.Logger, m *metrics.ScanMetrics) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger, metrics: m}
}

// Run discovers the files named by params and evaluates the formula
// against each of them, streaming matches to emit from worker
// goroutines. emit may be called concurrently and must be safe for
// that. Run returns once all workers have finished or the context is
// cancelled; the summary covers whatever work completed.
func (s *Scanner) Run(ctx context.Context, params Params, emit func(Match)) (Summary, error) {
	started := time.Now()

	if params.Formula == nil {
		return Summary{}, fmt.Errorf("scan: no compiled formula")
	}
	if params.Mode == "" {
		params.Mode = ModeLine
	}
	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	files, err := discoverFiles(params.Paths, params.Extensions)
	if err != nil {
		return Summary{}, err
	}

	s.logger.Info("scan starting",
		"formula", params.Formula.Normalized(),
		"files", len(files),
		"mode", params.Mode,
		"workers", workers,
	)

	var (
		mu      sync.Mutex
		summary Summary
		scanned int
	)
	dedup := newDeduper()
	fileCh := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range fileCh {
				matches, err := s.scanFile(ctx, file, params, dedup)

				mu.Lock()
				scanned++
				summary.FilesScanned++
				if err != nil {
					summary.FilesErrored++
				}
				// A failed file may still have produced matches before
				// the error; they are emitted, so they are counted.
				summary.Matches += len(matches)
				progress := scanned
				mu.Unlock()

				if err != nil {
					s.logger.Warn("file scan failed", "file", file, "error", err)
					emit(Match{File: file, Err: err})
					if s.metrics != nil {
						s.metrics.ScanErrors.Inc()
					}
				}
				for _, m := range matches {
					emit(m)
				}
				if s.metrics != nil {
					s.metrics.FilesScanned.Inc()
					s.metrics.Matches.Add(float64(len(matches)))
				}
				if params.Progress != nil {
					params.Progress(progress, len(files))
				}
			}
		}()
	}

feed:
	for _, file := range files {
		select {
		case <-ctx.Done():
			break feed
		case fileCh <- file:
		}
	}
	close(fileCh)
	wg.Wait()

	summary.Duration = time.Since(started)
	if s.metrics != nil {
		s.metrics.ScansTotal.Inc()
		s.metrics.ScanDuration.Observe(summary.Duration.Seconds())
	}

	s.logger.Info("scan finished",
		"files_scanned", summary.FilesScanned,
		"files_errored", summary.FilesErrored,
		"matches", summary.Matches,
		"duration", summary.Duration,
	)

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}
