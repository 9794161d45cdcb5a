package config

import "time"

// Config is the root configuration structure for Spyglass. It covers
// the search phrases and formula, scan behavior, run history storage,
// watch mode, and telemetry settings.
type Config struct {
	// Phrases maps variable letters to the phrases they stand for.
	// Keys are single uppercase letters ("A" through "D" by default).
	Phrases map[string]PhraseConfig `yaml:"phrases"`

	// Formula is the boolean search formula, e.g. "(A OR B) AND NOT C".
	// When empty, a conjunction of all bound phrases is used.
	Formula string `yaml:"formula"`

	// Scan contains scan behavior configuration including target paths,
	// extension filters, and worker count.
	Scan ScanConfig `yaml:"scan"`

	// Watch contains watch-mode configuration.
	Watch WatchConfig `yaml:"watch"`

	// History contains run history storage and retention configuration.
	History HistoryConfig `yaml:"history"`

	// Telemetry contains observability configuration for logging and
	// metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PhraseConfig binds one formula variable to a search phrase.
type PhraseConfig struct {
	// Text is the phrase to search for. An empty text leaves the
	// variable unbound; an unbound variable never matches.
	Text string `yaml:"text"`

	// CaseSensitive controls whether the phrase must match case
	// exactly. Default: false (case-insensitive).
	CaseSensitive bool `yaml:"case_sensitive"`
}

// ScanConfig contains configuration for scan runs.
type ScanConfig struct {
	// Paths are the files and directories to scan. Directories are
	// walked recursively.
	Paths []string `yaml:"paths"`

	// Extensions restricts the scan to files with one of these
	// extensions (e.g. [".go", ".md"]). Empty means all files.
	Extensions []string `yaml:"extensions"`

	// Mode selects match granularity: "line" evaluates the formula per
	// line, "document" per whole file.
	// Default: "line"
	Mode string `yaml:"mode"`

	// Unique suppresses repeated matches of the same content.
	// Default: false
	Unique bool `yaml:"unique"`

	// Workers is the number of files scanned concurrently.
	// Default: number of CPUs
	Workers int `yaml:"workers"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// DebounceInterval is how long to wait after a filesystem event
	// before rescanning, so bursts of writes trigger one scan.
	// Default: 250ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// HistoryConfig contains configuration for scan run history.
type HistoryConfig struct {
	// Enabled controls whether completed runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file for run history.
	// Default: "spyglass-history.db"
	Path string `yaml:"path"`

	// RetentionDays is how long runs are kept before pruning.
	// 0 keeps runs forever.
	// Default: 0
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for when watch mode prunes old
	// runs (e.g. "0 3 * * *"). Empty disables scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration. Metrics are
// only served in watch mode, where the process is long-lived.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address for the metrics HTTP server.
	// Default: "127.0.0.1:9190"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path for the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace and Subsystem prefix every metric name.
	// Defaults: "spyglass" / "scan"
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`
}
