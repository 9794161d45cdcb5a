// Package history records completed scan runs so past searches can be
// reviewed and re-run. It ships a SQLite backend for persistence and an
// in-memory backend for tests and one-off use, plus retention pruning
// for the watch command.
package history
