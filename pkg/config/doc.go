// Package config loads and validates Spyglass configuration from YAML
// files, with defaults and SPYGLASS_* environment variable overrides.
package config
