package parser

import (
	"fmt"

	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
)

// ParseError describes why a formula could not be parsed. It carries the
// byte range of the offending token in the normalized formula text so a
// caller can highlight it.
type ParseError struct {
	Kind     diag.Kind
	Message  string
	Position ast.Position
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Message, e.Position)
}

// Diagnostic converts the parse error into a diagnostic for the
// validation result.
func (e *ParseError) Diagnostic() diag.Diagnostic {
	pos := e.Position
	return diag.Diagnostic{
		Kind:     e.Kind,
		Severity: diag.SeverityError,
		Message:  e.Message,
		Position: &pos,
	}
}

func errorf(kind diag.Kind, pos ast.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
	}
}
