package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified
// path. It applies default values, validates the configuration, and
// returns any errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow
// the naming convention SPYGLASS_SECTION_FIELD (e.g.
// SPYGLASS_SCAN_MODE) and always take precedence over file values.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	// Formula and phrase overrides. SPYGLASS_PHRASE_A through
	// SPYGLASS_PHRASE_Z rebind the phrase text, keeping the configured
	// case sensitivity.
	if val := os.Getenv("SPYGLASS_FORMULA"); val != "" {
		cfg.Formula = val
	}
	for letter := 'A'; letter <= 'Z'; letter++ {
		key := string(letter)
		if val := os.Getenv("SPYGLASS_PHRASE_" + key); val != "" {
			phrase := cfg.Phrases[key]
			phrase.Text = val
			cfg.Phrases[key] = phrase
		}
	}

	// Scan overrides
	if val := os.Getenv("SPYGLASS_SCAN_MODE"); val != "" {
		cfg.Scan.Mode = val
	}
	if val := os.Getenv("SPYGLASS_SCAN_PATHS"); val != "" {
		cfg.Scan.Paths = splitList(val)
	}
	if val := os.Getenv("SPYGLASS_SCAN_EXTENSIONS"); val != "" {
		cfg.Scan.Extensions = splitList(val)
	}
	if val := os.Getenv("SPYGLASS_SCAN_UNIQUE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Scan.Unique = b
		}
	}
	if val := os.Getenv("SPYGLASS_SCAN_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Scan.Workers = i
		}
	}

	// Watch overrides
	if val := os.Getenv("SPYGLASS_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}

	// History overrides
	if val := os.Getenv("SPYGLASS_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("SPYGLASS_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}
	if val := os.Getenv("SPYGLASS_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = i
		}
	}
	if val := os.Getenv("SPYGLASS_HISTORY_PRUNE_SCHEDULE"); val != "" {
		cfg.History.PruneSchedule = val
	}

	// Telemetry overrides
	if val := os.Getenv("SPYGLASS_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("SPYGLASS_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("SPYGLASS_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("SPYGLASS_TELEMETRY_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
}

// splitList splits a comma-separated environment value into a list,
// trimming whitespace and dropping empty entries.
func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
