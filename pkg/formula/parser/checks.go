package parser

import (
	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
	"finder-hq/spyglass/pkg/formula/token"
)

// tokenPos returns the source range of a token.
func tokenPos(t token.Token) ast.Position {
	return ast.Position{Start: t.Start, End: t.End}
}

// checkStream rejects token streams the grammar cannot accept, each with
// a distinct error kind and the offending token's position. Running
// these checks up front yields sharper diagnostics than letting the
// descent parser fail mid-expression.
func checkStream(tokens []token.Token) *ParseError {
	if len(tokens) == 0 {
		return errorf(diag.KindEmptyFormula, ast.Position{}, "formula is empty")
	}

	for _, t := range tokens {
		if t.Kind == token.KindInvalid {
			return errorf(diag.KindInvalidCharacter, tokenPos(t),
				"invalid character %q in formula", t.Lexeme)
		}
	}

	if err := checkBrackets(tokens); err != nil {
		return err
	}
	return checkSequence(tokens)
}

// checkBrackets verifies that every opening bracket is closed by the
// same bracket kind, in properly nested order.
func checkBrackets(tokens []token.Token) *ParseError {
	var stack []token.Token

	for _, t := range tokens {
		switch t.Kind {
		case token.KindLParen:
			stack = append(stack, t)
		case token.KindRParen:
			if len(stack) == 0 {
				return errorf(diag.KindUnmatchedClose, tokenPos(t),
					"unmatched closing %q", t.Lexeme)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if open.Bracket != t.Bracket {
				return errorf(diag.KindMismatchedBracket, tokenPos(t),
					"opening %q closed by %q", open.Lexeme, t.Lexeme)
			}
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return errorf(diag.KindUnmatchedOpen, tokenPos(open),
			"unclosed %q", open.Lexeme)
	}
	return nil
}

// checkSequence verifies that adjacent tokens can legally follow one
// another: operands need operators between them, binary operators need
// operands on both sides, and NOT needs an operand after it.
func checkSequence(tokens []token.Token) *ParseError {
	first := tokens[0]
	if first.IsBinaryOp() {
		return errorf(diag.KindDanglingOperator, tokenPos(first),
			"%s operator at start of formula needs a left operand", first.Lexeme)
	}

	last := tokens[len(tokens)-1]
	switch {
	case last.IsBinaryOp():
		return errorf(diag.KindDanglingOperator, tokenPos(last),
			"%s operator at end of formula needs a right operand", last.Lexeme)
	case last.Kind == token.KindNot:
		return errorf(diag.KindMissingNotOperand, tokenPos(last),
			"NOT operator at end of formula needs an operand")
	}

	for i := 0; i < len(tokens)-1; i++ {
		cur, next := tokens[i], tokens[i+1]

		switch {
		case cur.Kind == token.KindLParen && next.Kind == token.KindRParen:
			return errorf(diag.KindEmptyGroup,
				ast.Position{Start: cur.Start, End: next.End},
				"empty group %s%s must contain an expression", cur.Lexeme, next.Lexeme)

		case cur.IsBinaryOp() && next.IsBinaryOp():
			return errorf(diag.KindConsecutiveBinaryOp, tokenPos(next),
				"consecutive operators %s %s", cur.Lexeme, next.Lexeme)

		case cur.Kind == token.KindVar && next.Kind == token.KindVar:
			return errorf(diag.KindAdjacentVariables, tokenPos(next),
				"missing operator between variables %s and %s", cur.Lexeme, next.Lexeme)

		case endsOperand(cur) && next.IsOperand():
			return errorf(diag.KindAdjacentVariables, tokenPos(next),
				"missing operator before %s", next.Lexeme)

		case endsOperand(cur) && next.Kind == token.KindNot:
			return errorf(diag.KindDanglingOperator, tokenPos(next),
				"NOT after %s needs a binary operator before it", cur.Lexeme)

		case cur.Kind == token.KindNot && next.IsBinaryOp():
			return errorf(diag.KindMissingNotOperand, tokenPos(cur),
				"NOT operator needs an operand, found %s", next.Lexeme)

		case cur.Kind == token.KindNot && next.Kind == token.KindRParen:
			return errorf(diag.KindMissingNotOperand, tokenPos(cur),
				"NOT operator needs an operand before %s", next.Lexeme)

		case cur.Kind == token.KindLParen && next.IsBinaryOp():
			return errorf(diag.KindDanglingOperator, tokenPos(next),
				"%s operator after %s needs a left operand", next.Lexeme, cur.Lexeme)

		case cur.IsBinaryOp() && next.Kind == token.KindRParen:
			return errorf(diag.KindDanglingOperator, tokenPos(cur),
				"%s operator before %s needs a right operand", cur.Lexeme, next.Lexeme)
		}
	}
	return nil
}

// endsOperand reports whether a token can legally end an operand.
func endsOperand(t token.Token) bool {
	return t.Kind == token.KindVar || t.Kind == token.KindRParen
}
