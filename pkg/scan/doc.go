// Package scan runs a compiled formula over files and directories.
//
// A scan takes immutable snapshots of the formula and phrase bindings,
// discovers the files to search, and fans them out to a pool of worker
// goroutines that each evaluate the formula per line or per document.
// Matches stream to the caller as they are found; per-file read errors
// are part of the stream, not silently dropped. Cancellation is
// cooperative through the context.
package scan
