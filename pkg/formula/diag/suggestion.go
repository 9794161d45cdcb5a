package diag

import (
	"fmt"
	"strings"
)

// remediations maps each diagnostic kind to one fixed, user-actionable
// suggestion. The texts are phrased against the formula the user typed,
// not against engine internals.
var remediations = map[Kind]string{
	KindEmptyFormula:        "Enter a formula, or fill in phrases and let one be constructed automatically.",
	KindInvalidCharacter:    "Replace unsupported characters with AND/OR/NOT operators or parentheses.",
	KindUnmatchedOpen:       "Balance parentheses/brackets so every opening symbol has a matching close.",
	KindUnmatchedClose:      "Balance parentheses/brackets so every opening symbol has a matching close.",
	KindMismatchedBracket:   "Close each group with the same bracket kind it was opened with.",
	KindEmptyGroup:          "Add content inside the empty parentheses or remove them entirely.",
	KindConsecutiveBinaryOp: "Place a variable or group between operators, e.g. 'A AND B OR C'.",
	KindAdjacentVariables:   "Ensure each variable is separated by an operator, e.g. 'A AND B'.",
	KindDanglingOperator:    "Provide values on both sides of each operator, such as 'A OR (B AND C)'.",
	KindMissingNotOperand:   "Give NOT something to negate, such as 'NOT A' or 'NOT (A OR B)'.",
	KindParadox:             "Remove contradictory terms like 'A AND NOT A', or split them into separate searches.",
	KindTautology:           "Simplify tautologies such as 'A OR NOT A' to reduce unnecessary matches.",
	KindUnboundVariable:     "Fill in phrases for the listed variables or remove those letters from the formula.",
}

// Suggest maps diagnostics to remediation strings. The output preserves
// input order and is deduplicated by the lower-cased suggestion text, so
// five unbound variables still produce a single suggestion. Kinds with
// no known remediation fall back to echoing the raw message prefixed
// with "Review:".
func Suggest(diagnostics []Diagnostic) []string {
	var suggestions []string
	seen := make(map[string]bool)

	for _, d := range diagnostics {
		suggestion, ok := remediations[d.Kind]
		if !ok {
			suggestion = fmt.Sprintf("Review: %s", d.Message)
		}

		key := strings.ToLower(suggestion)
		if seen[key] {
			continue
		}
		seen[key] = true
		suggestions = append(suggestions, suggestion)
	}
	return suggestions
}
