// Package logging constructs the process-wide structured logger from
// configuration. All components log through log/slog; this package only
// decides level, format, and destination.
package logging
