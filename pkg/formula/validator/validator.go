package validator

import (
	"errors"

	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
	"finder-hq/spyglass/pkg/formula/parser"
)

// Result is the outcome of validating one formula. IsValid reports
// whether the formula is structurally sound; semantic warnings never
// affect it. Whether a warning blocks execution is a property of the
// individual diagnostic, inspected via Blocked.
type Result struct {
	IsValid  bool
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
}

// Blocked returns true when the caller must not run a search: either
// the formula failed to parse, or a blocking warning (an unsatisfiable
// formula) is present.
func (r Result) Blocked() bool {
	if !r.IsValid {
		return true
	}
	for _, w := range r.Warnings {
		if w.Blocking() {
			return true
		}
	}
	return false
}

// Diagnostics returns errors followed by warnings, the order the
// suggestion mapper expects.
func (r Result) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

// Validate runs the semantic passes over a parsed formula: the
// contradiction pass, the tautology pass, and the unbound-variable pass
// against the supplied phrase texts. The passes are independent; all of
// them run and their findings accumulate.
func Validate(root ast.Node, phraseTexts map[rune]string) Result {
	result := Result{IsValid: true}
	result.Warnings = append(result.Warnings, checkContradictions(root)...)
	result.Warnings = append(result.Warnings, checkTautologies(root)...)
	result.Warnings = append(result.Warnings, checkUnbound(root, phraseTexts)...)
	return result
}

// FromParseError builds the result for a formula that failed to parse:
// exactly that error and nothing else, since semantic passes need a
// tree to walk.
func FromParseError(err error) Result {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return Result{Errors: []diag.Diagnostic{parseErr.Diagnostic()}}
	}
	return Result{Errors: []diag.Diagnostic{{
		Kind:     diag.KindEmptyFormula,
		Severity: diag.SeverityError,
		Message:  err.Error(),
	}}}
}
