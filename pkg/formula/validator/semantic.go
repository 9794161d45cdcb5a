package validator

import (
	"fmt"

	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
)

// checkContradictions finds subtrees of the shape "X AND NOT X" (either
// operand order, at any depth). Such a formula can never match, so the
// warning is blocking: a search must not run until it is resolved.
func checkContradictions(root ast.Node) []diag.Diagnostic {
	return findSelfNegations(root, ast.OpAnd, func(letter rune, pos ast.Position) diag.Diagnostic {
		p := pos
		return diag.Diagnostic{
			Kind:     diag.KindParadox,
			Severity: diag.SeverityBlocking,
			Message:  fmt.Sprintf("paradox: '%c AND NOT %c' can never be true", letter, letter),
			Position: &p,
		}
	})
}

// checkTautologies finds subtrees of the shape "X OR NOT X". The formula
// still runs, it just matches everything, so the warning is advisory.
func checkTautologies(root ast.Node) []diag.Diagnostic {
	return findSelfNegations(root, ast.OpOr, func(letter rune, pos ast.Position) diag.Diagnostic {
		p := pos
		return diag.Diagnostic{
			Kind:     diag.KindTautology,
			Severity: diag.SeverityAdvisory,
			Message:  fmt.Sprintf("tautology: '%c OR NOT %c' is always true", letter, letter),
			Position: &p,
		}
	})
}

// findSelfNegations walks the tree looking for BinOp(op, Var(x), Not(Var(x)))
// in either operand order, seeing through group wrappers.
func findSelfNegations(root ast.Node, op ast.Op, build func(rune, ast.Position) diag.Diagnostic) []diag.Diagnostic {
	var found []diag.Diagnostic

	ast.Walk(root, ast.VisitorFunc(func(n ast.Node) error {
		binop, ok := n.(*ast.BinOp)
		if !ok || binop.Op != op {
			return nil
		}
		if letter, ok := selfNegatedLetter(binop.Left, binop.Right); ok {
			found = append(found, build(letter, binop.Position))
		} else if letter, ok := selfNegatedLetter(binop.Right, binop.Left); ok {
			found = append(found, build(letter, binop.Position))
		}
		return nil
	}))
	return found
}

// selfNegatedLetter reports whether plain is Var(x) and negated is
// NOT Var(x) for the same letter.
func selfNegatedLetter(plain, negated ast.Node) (rune, bool) {
	v, ok := ast.Unwrap(plain).(*ast.Var)
	if !ok {
		return 0, false
	}
	not, ok := ast.Unwrap(negated).(*ast.Not)
	if !ok {
		return 0, false
	}
	inner, ok := ast.Unwrap(not.Child).(*ast.Var)
	if !ok || inner.Letter != v.Letter {
		return 0, false
	}
	return v.Letter, true
}

// checkUnbound reports every referenced letter whose phrase text is
// empty or missing. Those variables always evaluate to false, which is
// rarely what the user meant, but the search may still run.
func checkUnbound(root ast.Node, phraseTexts map[rune]string) []diag.Diagnostic {
	var found []diag.Diagnostic

	for _, letter := range ast.Letters(root) {
		if phraseTexts[letter] != "" {
			continue
		}
		found = append(found, diag.Diagnostic{
			Kind:     diag.KindUnboundVariable,
			Severity: diag.SeverityAdvisory,
			Message:  fmt.Sprintf("variable %c is used in the formula but has no phrase bound", letter),
		})
	}
	return found
}
