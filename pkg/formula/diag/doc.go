// Package diag defines the diagnostic values shared by the parser and
// validator, and the stateless mapper that turns them into deduplicated
// remediation suggestions for display.
package diag
