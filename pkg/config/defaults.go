package config

import (
	"runtime"
	"time"
)

// Default values applied to unset fields.
const (
	DefaultScanMode         = "line"
	DefaultDebounceInterval = 250 * time.Millisecond
	DefaultHistoryPath      = "spyglass-history.db"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMetricsAddress   = "127.0.0.1:9190"
	DefaultMetricsPath      = "/metrics"
)

// ApplyDefaults fills in default values for any unset fields. It is
// called by LoadConfig before validation; call it directly when
// building a Config in code.
func ApplyDefaults(cfg *Config) {
	if cfg.Phrases == nil {
		cfg.Phrases = make(map[string]PhraseConfig)
	}

	if cfg.Scan.Mode == "" {
		cfg.Scan.Mode = DefaultScanMode
	}
	if cfg.Scan.Workers <= 0 {
		cfg.Scan.Workers = runtime.NumCPU()
	}

	if cfg.Watch.DebounceInterval <= 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}

	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsAddress
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
}

// DefaultConfig returns a Config with all defaults applied and no
// phrases bound.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
