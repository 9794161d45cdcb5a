package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config controls what the watcher observes.
type Config struct {
	// Paths are the scan roots to watch; directories are watched
	// recursively.
	Paths []string

	// Extensions limits which file changes trigger a rescan; empty
	// means any file. Matching follows the scan engine's rules.
	Extensions []string

	// DebounceInterval is how long to wait after the last change
	// before triggering, so a burst of writes causes one rescan.
	// Default: 250ms.
	DebounceInterval time.Duration
}

// Watcher triggers rescans when files under the scan roots change.
// A rescan always starts from fresh formula and binding snapshots; an
// in-flight scan is never mutated, only superseded.
type Watcher struct {
	fsw      *fsnotify.Watcher
	config   Config
	logger   *slog.Logger
	debounce *debouncer
}

// New creates a watcher for the configured paths.
func New(config Config, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 250 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsw:      fsw,
		config:   config,
		logger:   logger,
		debounce: newDebouncer(config.DebounceInterval),
	}, nil
}

// Run watches until the context is cancelled, calling onChange after
// each debounced batch of relevant file events. onChange runs on the
// debounce timer goroutine; it should hand off to its own worker rather
// than block.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	for _, path := range w.config.Paths {
		if err := w.addPath(path); err != nil {
			return err
		}
	}

	w.logger.Info("watch started",
		"paths", w.config.Paths,
		"debounce", w.config.DebounceInterval,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watch stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			// New directories must be added to the watch set before
			// the rescan so later changes inside them are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addPath(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			w.debounce.trigger(onChange)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.debounce.stop()
	return w.fsw.Close()
}

// addPath registers a file, or a directory tree, with fsnotify.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat watch path %q: %w", path, err)
	}
	if !info.IsDir() {
		return w.fsw.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && p != path {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", p, err)
		}
		return nil
	})
}

// relevant filters events down to content changes on files the scan
// would look at.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if len(w.config.Extensions) == 0 {
		return true
	}
	// Directories have no extension but still matter (create/remove).
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return true
	}
	lower := strings.ToLower(event.Name)
	for _, ext := range w.config.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// debouncer coalesces bursts of triggers into one callback per quiet
// interval.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, callback)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
