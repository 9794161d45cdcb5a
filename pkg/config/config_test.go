package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spyglass.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
phrases:
  A:
    text: "def "
  B:
    text: class
  C:
    text: Error
    case_sensitive: true
formula: (A OR B) AND NOT C
scan:
  paths: [./src, ./docs]
  extensions: [".go", ".md"]
  mode: document
  unique: true
  workers: 4
history:
  enabled: true
  path: /tmp/history.db
  retention_days: 30
telemetry:
  logging:
    level: debug
    format: json
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Formula != "(A OR B) AND NOT C" {
		t.Errorf("formula = %q", cfg.Formula)
	}
	if got := cfg.Phrases["A"].Text; got != "def " {
		t.Errorf("phrase A = %q, want %q", got, "def ")
	}
	if !cfg.Phrases["C"].CaseSensitive {
		t.Error("phrase C should be case sensitive")
	}
	if cfg.Scan.Mode != "document" || !cfg.Scan.Unique || cfg.Scan.Workers != 4 {
		t.Errorf("scan config lost: %+v", cfg.Scan)
	}
	if len(cfg.Scan.Paths) != 2 || cfg.Scan.Paths[1] != "./docs" {
		t.Errorf("paths = %v", cfg.Scan.Paths)
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 30 {
		t.Errorf("history config lost: %+v", cfg.History)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("logging config lost: %+v", cfg.Telemetry.Logging)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
phrases:
  A:
    text: hello
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Scan.Mode != DefaultScanMode {
		t.Errorf("default mode = %q, want %q", cfg.Scan.Mode, DefaultScanMode)
	}
	if cfg.Scan.Workers != runtime.NumCPU() {
		t.Errorf("default workers = %d, want %d", cfg.Scan.Workers, runtime.NumCPU())
	}
	if cfg.Watch.DebounceInterval != DefaultDebounceInterval {
		t.Errorf("default debounce = %v", cfg.Watch.DebounceInterval)
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("default history path = %q", cfg.History.Path)
	}
	if cfg.Telemetry.Logging.Level != DefaultLogLevel || cfg.Telemetry.Logging.Format != DefaultLogFormat {
		t.Errorf("default logging = %+v", cfg.Telemetry.Logging)
	}
	if cfg.Telemetry.Metrics.ListenAddress != DefaultMetricsAddress {
		t.Errorf("default metrics address = %q", cfg.Telemetry.Metrics.ListenAddress)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("LoadConfig succeeded on a missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "scan: [not a map")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig succeeded on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name: "bad mode",
			mutate: func(cfg *Config) {
				cfg.Scan.Mode = "paragraph"
			},
			wantErr: true,
		},
		{
			name: "bad phrase key",
			mutate: func(cfg *Config) {
				cfg.Phrases["ab"] = PhraseConfig{Text: "x"}
			},
			wantErr: true,
		},
		{
			name: "lowercase phrase key",
			mutate: func(cfg *Config) {
				cfg.Phrases["a"] = PhraseConfig{Text: "x"}
			},
			wantErr: true,
		},
		{
			name: "extension without dot",
			mutate: func(cfg *Config) {
				cfg.Scan.Extensions = []string{"go"}
			},
			wantErr: true,
		},
		{
			name: "negative retention",
			mutate: func(cfg *Config) {
				cfg.History.RetentionDays = -1
			},
			wantErr: true,
		},
		{
			name: "bad log level",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Logging.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "bad log format",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Logging.Format = "xml"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
phrases:
  A:
    text: original
    case_sensitive: true
formula: A
scan:
  mode: line
  workers: 2
`)

	t.Setenv("SPYGLASS_FORMULA", "A AND B")
	t.Setenv("SPYGLASS_PHRASE_A", "replaced")
	t.Setenv("SPYGLASS_PHRASE_B", "added")
	t.Setenv("SPYGLASS_SCAN_MODE", "document")
	t.Setenv("SPYGLASS_SCAN_WORKERS", "8")
	t.Setenv("SPYGLASS_SCAN_EXTENSIONS", ".go, .md")
	t.Setenv("SPYGLASS_HISTORY_ENABLED", "true")
	t.Setenv("SPYGLASS_TELEMETRY_LOGGING_LEVEL", "warn")
	t.Setenv("SPYGLASS_WATCH_DEBOUNCE_INTERVAL", "1s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides: %v", err)
	}

	if cfg.Formula != "A AND B" {
		t.Errorf("formula = %q", cfg.Formula)
	}
	if got := cfg.Phrases["A"]; got.Text != "replaced" || !got.CaseSensitive {
		t.Errorf("phrase A = %+v, want replaced text with case sensitivity kept", got)
	}
	if got := cfg.Phrases["B"].Text; got != "added" {
		t.Errorf("phrase B = %q, want %q", got, "added")
	}
	if cfg.Scan.Mode != "document" || cfg.Scan.Workers != 8 {
		t.Errorf("scan overrides lost: %+v", cfg.Scan)
	}
	if len(cfg.Scan.Extensions) != 2 || cfg.Scan.Extensions[1] != ".md" {
		t.Errorf("extensions = %v", cfg.Scan.Extensions)
	}
	if !cfg.History.Enabled {
		t.Error("history override lost")
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("logging level = %q", cfg.Telemetry.Logging.Level)
	}
	if cfg.Watch.DebounceInterval != time.Second {
		t.Errorf("debounce = %v", cfg.Watch.DebounceInterval)
	}
}

func TestEnvOverridesRevalidated(t *testing.T) {
	path := writeConfig(t, "formula: A\nphrases:\n  A:\n    text: x\n")

	t.Setenv("SPYGLASS_SCAN_MODE", "paragraph")
	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Fatal("invalid override passed validation")
	}
}
