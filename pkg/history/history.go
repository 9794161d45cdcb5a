package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"finder-hq/spyglass/pkg/scan"
)

// Record is one completed scan run. Matches themselves are not
// persisted, only the run's shape and outcome; history answers "what
// did I search for and what came back", not "show me the hits again".
type Record struct {
	ID           string        `json:"id"`
	Formula      string        `json:"formula"`
	Normalized   string        `json:"normalized"`
	Paths        []string      `json:"paths"`
	Mode         string        `json:"mode"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	FilesScanned int           `json:"files_scanned"`
	FilesErrored int           `json:"files_errored"`
	MatchCount   int           `json:"match_count"`
}

// NewRecord builds a record for a finished scan.
func NewRecord(params scan.Params, summary scan.Summary, startedAt time.Time) *Record {
	return &Record{
		ID:           uuid.NewString(),
		Formula:      params.Formula.Source(),
		Normalized:   params.Formula.Normalized(),
		Paths:        params.Paths,
		Mode:         string(params.Mode),
		StartedAt:    startedAt,
		Duration:     summary.Duration,
		FilesScanned: summary.FilesScanned,
		FilesErrored: summary.FilesErrored,
		MatchCount:   summary.Matches,
	}
}

// Storage persists scan runs. Implementations must be safe for
// concurrent use.
type Storage interface {
	// SaveRun persists one record.
	SaveRun(ctx context.Context, record *Record) error

	// ListRuns returns the most recent runs, newest first, up to limit.
	// limit <= 0 means no limit.
	ListRuns(ctx context.Context, limit int) ([]*Record, error)

	// RunsSince returns runs started at or after t, newest first.
	RunsSince(ctx context.Context, t time.Time) ([]*Record, error)

	// PruneBefore deletes runs started before t and reports how many
	// were removed.
	PruneBefore(ctx context.Context, t time.Time) (int64, error)

	// Close releases the backend.
	Close() error
}
