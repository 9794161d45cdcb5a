package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind string

const (
	KindVar     Kind = "var"     // phrase variable (one alphabet letter)
	KindAnd     Kind = "and"     // binary AND
	KindOr      Kind = "or"      // binary OR
	KindNot     Kind = "not"     // prefix NOT
	KindNor     Kind = "nor"     // binary NOR
	KindXor     Kind = "xor"     // binary XOR
	KindXnor    Kind = "xnor"    // binary XNOR
	KindLParen  Kind = "lparen"  // opening bracket
	KindRParen  Kind = "rparen"  // closing bracket
	KindInvalid Kind = "invalid" // unrecognized character
)

// BracketKind distinguishes the three interchangeable grouping styles.
// All three group identically, but an opening bracket must be closed by
// the same kind.
type BracketKind string

const (
	BracketParen  BracketKind = "paren"  // ( )
	BracketSquare BracketKind = "square" // [ ]
	BracketCurly  BracketKind = "curly"  // { }
)

// Token is a single lexical element of a normalized formula.
// Start and End are byte offsets into the normalized source text,
// with End exclusive.
type Token struct {
	Kind    Kind
	Lexeme  string
	Letter  rune        // set for KindVar and KindInvalid
	Bracket BracketKind // set for KindLParen and KindRParen
	Start   int
	End     int
}

// IsBinaryOp returns true for the five infix operators.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case KindAnd, KindOr, KindNor, KindXor, KindXnor:
		return true
	}
	return false
}

// IsOperand returns true for tokens that can begin an operand:
// a variable or an opening bracket.
func (t Token) IsOperand() bool {
	return t.Kind == KindVar || t.Kind == KindLParen
}

// String returns a compact description used in diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}
