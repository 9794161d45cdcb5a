package diag

import (
	"fmt"
	"strings"

	"finder-hq/spyglass/pkg/formula/ast"
)

// Kind categorizes a diagnostic. Parse kinds are hard errors; the
// semantic kinds are warnings whose severity decides whether a search
// may still run.
type Kind string

const (
	// Parse error kinds.
	KindEmptyFormula        Kind = "empty_formula"
	KindInvalidCharacter    Kind = "invalid_character"
	KindUnmatchedOpen       Kind = "unmatched_open"
	KindUnmatchedClose      Kind = "unmatched_close"
	KindMismatchedBracket   Kind = "mismatched_bracket"
	KindEmptyGroup          Kind = "empty_group"
	KindConsecutiveBinaryOp Kind = "consecutive_binary_operators"
	KindAdjacentVariables   Kind = "adjacent_variables"
	KindDanglingOperator    Kind = "dangling_operator"
	KindMissingNotOperand   Kind = "missing_not_operand"

	// Semantic warning kinds.
	KindParadox         Kind = "paradox"
	KindTautology       Kind = "tautology"
	KindUnboundVariable Kind = "unbound_variable"
)

// Severity classifies how a diagnostic constrains the caller.
type Severity string

const (
	// SeverityError marks a malformed formula; compilation failed.
	SeverityError Severity = "error"
	// SeverityBlocking marks a well-formed formula that must not be
	// executed (an unsatisfiable search).
	SeverityBlocking Severity = "blocking"
	// SeverityAdvisory marks informational findings; execution may proceed.
	SeverityAdvisory Severity = "advisory"
)

// Diagnostic is a single finding from parsing or validation. Position is
// a byte range in the normalized formula text; it is nil for findings
// that have no single source location (for example an unbound variable).
type Diagnostic struct {
	Kind     Kind          `json:"kind"`
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Position *ast.Position `json:"position,omitempty"`
}

// Blocking returns true when the diagnostic must prevent a search from
// running.
func (d Diagnostic) Blocking() bool {
	return d.Severity == SeverityError || d.Severity == SeverityBlocking
}

// String formats the diagnostic for logs and plain-text output.
func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", d.Severity, d.Message)
	if d.Position != nil {
		fmt.Fprintf(&sb, " (at %s)", d.Position)
	}
	return sb.String()
}
