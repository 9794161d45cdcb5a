package config

import (
	"fmt"
	"strings"
	"unicode"

	"finder-hq/spyglass/pkg/telemetry/logging"
)

// Validate checks the configuration for errors. It assumes defaults
// have already been applied.
func Validate(cfg *Config) error {
	for key := range cfg.Phrases {
		if err := validatePhraseKey(key); err != nil {
			return err
		}
	}

	switch cfg.Scan.Mode {
	case "line", "document":
	default:
		return fmt.Errorf("scan.mode must be \"line\" or \"document\", got %q", cfg.Scan.Mode)
	}

	if cfg.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", cfg.Scan.Workers)
	}

	for _, ext := range cfg.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan.extensions entries must start with a dot, got %q", ext)
		}
	}

	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative, got %d", cfg.History.RetentionDays)
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}

	if _, err := logging.ParseLevel(cfg.Telemetry.Logging.Level); err != nil {
		return fmt.Errorf("telemetry.logging.level: %w", err)
	}
	if _, err := logging.ParseFormat(cfg.Telemetry.Logging.Format); err != nil {
		return fmt.Errorf("telemetry.logging.format: %w", err)
	}

	if cfg.Telemetry.Metrics.Enabled && cfg.Telemetry.Metrics.ListenAddress == "" {
		return fmt.Errorf("telemetry.metrics.listen_address is required when metrics are enabled")
	}

	return nil
}

// validatePhraseKey checks that a phrases map key is a single uppercase
// letter.
func validatePhraseKey(key string) error {
	runes := []rune(key)
	if len(runes) != 1 || !unicode.IsUpper(runes[0]) || !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("phrases keys must be single uppercase letters, got %q", key)
	}
	return nil
}
