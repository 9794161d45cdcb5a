package diag

import (
	"strings"
	"testing"
)

func TestSuggestMapsKinds(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string // substring of the expected suggestion
	}{
		{"paradox", KindParadox, "A AND NOT A"},
		{"tautology", KindTautology, "A OR NOT A"},
		{"unbound variable", KindUnboundVariable, "Fill in phrases"},
		{"invalid character", KindInvalidCharacter, "unsupported characters"},
		{"adjacent variables", KindAdjacentVariables, "separated by an operator"},
		{"unmatched open", KindUnmatchedOpen, "Balance parentheses"},
		{"unmatched close", KindUnmatchedClose, "Balance parentheses"},
		{"mismatched bracket", KindMismatchedBracket, "same bracket kind"},
		{"empty group", KindEmptyGroup, "empty parentheses"},
		{"dangling operator", KindDanglingOperator, "both sides"},
		{"missing not operand", KindMissingNotOperand, "negate"},
		{"empty formula", KindEmptyFormula, "Enter a formula"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest([]Diagnostic{{Kind: tt.kind, Message: "m"}})
			if len(got) != 1 {
				t.Fatalf("got %d suggestions, want 1", len(got))
			}
			if !strings.Contains(got[0], tt.want) {
				t.Errorf("suggestion %q does not mention %q", got[0], tt.want)
			}
		})
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	diagnostics := []Diagnostic{
		{Kind: KindUnboundVariable, Message: "variable A unbound"},
		{Kind: KindUnboundVariable, Message: "variable B unbound"},
		{Kind: KindParadox, Message: "paradox on C"},
		{Kind: KindUnmatchedOpen, Message: "unclosed ("},
		{Kind: KindUnmatchedClose, Message: "unmatched )"}, // same remediation text as above
	}

	got := Suggest(diagnostics)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions %v, want 3 after dedup", len(got), got)
	}
	// Order preserved: unbound first, then paradox, then brackets.
	if !strings.Contains(got[0], "Fill in phrases") {
		t.Errorf("first suggestion %q out of order", got[0])
	}
	if !strings.Contains(got[1], "contradictory") {
		t.Errorf("second suggestion %q out of order", got[1])
	}
}

func TestSuggestUnknownKindFallsBack(t *testing.T) {
	got := Suggest([]Diagnostic{{Kind: Kind("future_kind"), Message: "something new"}})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0] != "Review: something new" {
		t.Errorf("got %q, want Review fallback", got[0])
	}
}

func TestSuggestEmptyInput(t *testing.T) {
	if got := Suggest(nil); len(got) != 0 {
		t.Errorf("Suggest(nil) = %v, want empty", got)
	}
}

func TestDiagnosticBlocking(t *testing.T) {
	tests := []struct {
		severity Severity
		want     bool
	}{
		{SeverityError, true},
		{SeverityBlocking, true},
		{SeverityAdvisory, false},
	}
	for _, tt := range tests {
		d := Diagnostic{Severity: tt.severity}
		if d.Blocking() != tt.want {
			t.Errorf("Blocking() with %s = %v, want %v", tt.severity, d.Blocking(), tt.want)
		}
	}
}
