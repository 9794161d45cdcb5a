package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RetentionConfig controls automatic pruning of old scan runs.
type RetentionConfig struct {
	// RetentionDays is how long runs are kept. 0 disables pruning.
	RetentionDays int

	// PruneSchedule is a cron expression for when pruning runs in watch
	// mode, e.g. "0 3 * * *" for daily at 3 AM. Empty disables the
	// scheduler; Prune can still be called directly.
	PruneSchedule string
}

// Pruner deletes scan runs older than the retention period, either on
// demand or on a cron schedule during watch mode.
type Pruner struct {
	storage Storage
	config  RetentionConfig
	logger  *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

// NewPruner creates a pruner over the given storage.
func NewPruner(storage Storage, config RetentionConfig, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pruner{
		storage: storage,
		config:  config,
		logger:  logger.With("component", "history.retention"),
	}
}

// Prune deletes runs older than the retention period. It is a no-op
// when retention is disabled.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	if p.config.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
	pruned, err := p.storage.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("history prune failed: %w", err)
	}
	if pruned > 0 {
		p.logger.Info("pruned old scan runs", "pruned", pruned, "cutoff", cutoff)
	}
	return pruned, nil
}

// Start schedules pruning per the cron expression. It returns
// immediately; Stop shuts the scheduler down.
func (p *Pruner) Start(ctx context.Context) error {
	if p.config.PruneSchedule == "" || p.config.RetentionDays <= 0 {
		p.logger.Debug("retention scheduler disabled")
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron != nil {
		return fmt.Errorf("retention scheduler already running")
	}

	c := cron.New()
	_, err := c.AddFunc(p.config.PruneSchedule, func() {
		if _, err := p.Prune(ctx); err != nil {
			p.logger.Error("scheduled prune failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", p.config.PruneSchedule, err)
	}

	c.Start()
	p.cron = c
	p.logger.Info("retention scheduler started", "schedule", p.config.PruneSchedule)
	return nil
}

// Stop halts the scheduler, waiting for an in-flight prune to finish.
func (p *Pruner) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
	p.cron = nil
}
