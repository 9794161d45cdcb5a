package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
    id TEXT PRIMARY KEY,
    formula TEXT NOT NULL,
    normalized TEXT NOT NULL,
    paths TEXT NOT NULL,
    mode TEXT NOT NULL,
    started_at TIMESTAMP NOT NULL,
    duration_ms INTEGER NOT NULL,
    files_scanned INTEGER NOT NULL,
    files_errored INTEGER NOT NULL,
    match_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scan_runs_started_at ON scan_runs(started_at);
`

// SQLiteConfig configures the SQLite history backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5s.
	BusyTimeout time.Duration
}

// SQLiteStorage persists scan runs in a SQLite database. WAL mode is
// enabled so the watch command can record runs while the history
// command reads.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (creating if needed) the history database and
// applies the schema.
func NewSQLiteStorage(cfg SQLiteConfig) (*SQLiteStorage, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history: sqlite path is required")
	}
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d", cfg.Path, busy.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %q: %w", cfg.Path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// SaveRun persists one record.
func (s *SQLiteStorage) SaveRun(ctx context.Context, record *Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_runs
		(id, formula, normalized, paths, mode, started_at, duration_ms,
		 files_scanned, files_errored, match_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Formula,
		record.Normalized,
		strings.Join(record.Paths, "\n"),
		record.Mode,
		record.StartedAt.UTC(),
		record.Duration.Milliseconds(),
		record.FilesScanned,
		record.FilesErrored,
		record.MatchCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save scan run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]*Record, error) {
	query := `
		SELECT id, formula, normalized, paths, mode, started_at,
		       duration_ms, files_scanned, files_errored, match_count
		FROM scan_runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan runs: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// RunsSince returns runs started at or after t, newest first.
func (s *SQLiteStorage) RunsSince(ctx context.Context, t time.Time) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, formula, normalized, paths, mode, started_at,
		       duration_ms, files_scanned, files_errored, match_count
		FROM scan_runs WHERE started_at >= ? ORDER BY started_at DESC`,
		t.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan runs: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// PruneBefore deletes runs started before t.
func (s *SQLiteStorage) PruneBefore(ctx context.Context, t time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM scan_runs WHERE started_at < ?`, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune scan runs: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func scanRecords(rows *sql.Rows) ([]*Record, error) {
	var records []*Record
	for rows.Next() {
		var (
			r          Record
			paths      string
			durationMS int64
		)
		if err := rows.Scan(&r.ID, &r.Formula, &r.Normalized, &paths, &r.Mode,
			&r.StartedAt, &durationMS, &r.FilesScanned, &r.FilesErrored, &r.MatchCount); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if paths != "" {
			r.Paths = strings.Split(paths, "\n")
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, &r)
	}
	return records, rows.Err()
}
