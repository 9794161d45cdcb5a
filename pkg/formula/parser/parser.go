package parser

import (
	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
	"finder-hq/spyglass/pkg/formula/token"
)

// Operator precedence, loosest-binding first. OR and NOR share the
// lowest tier, XOR and XNOR the next, AND binds tightest of the binary
// operators, and prefix NOT binds tighter than all of them. This single
// table is the authority for every surface syntax: symbolic operators
// are rewritten to word form before tokenizing, so they cannot acquire a
// different precedence anywhere.
const (
	precOr  = 1 // OR, NOR
	precXor = 2 // XOR, XNOR
	precAnd = 3 // AND
)

var binaryOps = map[token.Kind]struct {
	op   ast.Op
	prec int
}{
	token.KindOr:   {ast.OpOr, precOr},
	token.KindNor:  {ast.OpNor, precOr},
	token.KindXor:  {ast.OpXor, precXor},
	token.KindXnor: {ast.OpXnor, precXor},
	token.KindAnd:  {ast.OpAnd, precAnd},
}

// Parse consumes a token stream and produces the formula syntax tree,
// or a *ParseError naming what is wrong and where. All binary operators
// are left-associative within their tier; bracketed groups reset
// precedence.
func Parse(tokens []token.Token) (ast.Node, error) {
	if err := checkStream(tokens); err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	node, err := p.parseExpr(precOr)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		return nil, errorf(diag.KindUnmatchedClose, tokenPos(t),
			"unexpected %q after end of expression", t.Lexeme)
	}
	return node, nil
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// parseExpr parses a subexpression whose binary operators all bind at
// least as tightly as minPrec, climbing precedence tiers as it goes.
func (p *parser) parseExpr(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.peek()
		if !ok {
			return left, nil
		}
		entry, isBinary := binaryOps[t.Kind]
		if !isBinary || entry.prec < minPrec {
			return left, nil
		}
		p.pos++

		// Left associativity: the right operand only admits
		// strictly tighter operators.
		right, err := p.parseExpr(entry.prec + 1)
		if err != nil {
			return nil, err
		}

		left = &ast.BinOp{
			Op:    entry.op,
			Left:  left,
			Right: right,
			Position: ast.Position{
				Start: left.Pos().Start,
				End:   right.Pos().End,
			},
		}
	}
}

// parseUnary parses a chain of NOT prefixes followed by a primary.
func (p *parser) parseUnary() (ast.Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, errorf(diag.KindEmptyFormula, ast.Position{}, "formula is empty")
	}

	if t.Kind == token.KindNot {
		p.pos++
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{
			Child:    child,
			Position: ast.Position{Start: t.Start, End: child.Pos().End},
		}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a variable or a bracketed group.
func (p *parser) parsePrimary() (ast.Node, error) {
	t, ok := p.peek()
	if !ok {
		last := p.tokens[len(p.tokens)-1]
		return nil, errorf(diag.KindDanglingOperator, tokenPos(last),
			"expression ends after %q", last.Lexeme)
	}

	switch t.Kind {
	case token.KindVar:
		p.pos++
		return &ast.Var{Letter: t.Letter, Position: tokenPos(t)}, nil

	case token.KindLParen:
		p.pos++
		child, err := p.parseExpr(precOr)
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.Kind != token.KindRParen {
			return nil, errorf(diag.KindUnmatchedOpen, tokenPos(t),
				"unclosed %q", t.Lexeme)
		}
		if closing.Bracket != t.Bracket {
			return nil, errorf(diag.KindMismatchedBracket, tokenPos(closing),
				"opening %q closed by %q", t.Lexeme, closing.Lexeme)
		}
		p.pos++
		return &ast.Group{
			Child:    child,
			Position: ast.Position{Start: t.Start, End: closing.End},
		}, nil

	default:
		return nil, errorf(diag.KindDanglingOperator, tokenPos(t),
			"expected a variable or group, found %q", t.Lexeme)
	}
}
