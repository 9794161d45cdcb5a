// Package telemetry groups observability support for Spyglass.
//
// # Components
//
//   - logging: structured logging via log/slog
//   - metrics: Prometheus metrics for the scan engine
//
// Logging is always on; metrics are only served in watch mode, where
// the process lives long enough to be scraped.
package telemetry
