// Spyglass is a boolean formula search tool for files and directories.
//
// It compiles formulas like "(A OR B) AND NOT C" over named search
// phrases and evaluates them per line or per document across a file
// tree, providing:
//   - Symbol and word operator syntax (AND/&&, OR/||, NOT/!, NOR, XOR, XNOR)
//   - Detailed formula diagnostics with remediation suggestions
//   - Concurrent scanning with progress reporting
//   - Watch mode that rescans on file changes
//   - Scan run history with retention pruning
//
// Usage:
//
//	# Validate a formula against the configured phrases
//	spyglass check "(A OR B) AND NOT C"
//
//	# Search the configured paths
//	spyglass search --path ./src "(A OR B) AND NOT C"
//
//	# Rescan whenever watched files change
//	spyglass watch
//
//	# Review past scans
//	spyglass history --limit 10
package main

func main() {
	Execute()
}
