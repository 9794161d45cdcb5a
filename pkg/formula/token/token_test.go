package token

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"word form untouched", "A AND B", "A AND B"},
		{"double ampersand", "A && B", "A AND B"},
		{"single ampersand", "A & B", "A AND B"},
		{"double pipe", "A || B", "A OR B"},
		{"single pipe", "A | B", "A OR B"},
		{"bang", "!A", "NOT A"},
		{"tilde", "~A", "NOT A"},
		{"caret", "A ^ B", "A XOR B"},
		{"mixed symbols", "A & B | !C", "A AND B OR NOT C"},
		{"no spaces around symbols", "A&&B", "A AND B"},
		{"whitespace collapsed", "  A   AND\t\tB  ", "A AND B"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
		{"unknown characters pass through", "A # B", "A # B"},
		{"lowercase words untouched", "a and b", "a and b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"A && B || !C",
		"A AND B",
		"((A | B) ^ C)",
		"~[A] & {B}",
		"",
		"garbage 123 #!",
		"A&&B&&C",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestTokenizeOperatorsAndVariables(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Kind
	}{
		{"simple and", "A AND B", []Kind{KindVar, KindAnd, KindVar}},
		{"all operators", "A AND B OR C NOR D XOR A XNOR B",
			[]Kind{KindVar, KindAnd, KindVar, KindOr, KindVar, KindNor, KindVar, KindXor, KindVar, KindXnor, KindVar}},
		{"not prefix", "NOT A", []Kind{KindNot, KindVar}},
		{"case insensitive operators", "a and b", []Kind{KindVar, KindAnd, KindVar}},
		{"mixed case operator", "A XnOr B", []Kind{KindVar, KindXnor, KindVar}},
		{"brackets", "(A) [B] {C}",
			[]Kind{KindLParen, KindVar, KindRParen, KindLParen, KindVar, KindRParen, KindLParen, KindVar, KindRParen}},
		{"digit is invalid", "A AND 1", []Kind{KindVar, KindAnd, KindInvalid}},
		{"punctuation is invalid", "A , B", []Kind{KindVar, KindInvalid, KindVar}},
		{"adjacent variables split", "AB", []Kind{KindVar, KindVar}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.in, []rune{'A', 'B', 'C', 'D'})
			if len(tokens) != len(tt.want) {
				t.Fatalf("Tokenize(%q) produced %d tokens %v, want %d", tt.in, len(tokens), tokens, len(tt.want))
			}
			for i, k := range tt.want {
				if tokens[i].Kind != k {
					t.Errorf("token %d of %q: got kind %s, want %s", i, tt.in, tokens[i].Kind, k)
				}
			}
		})
	}
}

func TestTokenizeWholeWordOperators(t *testing.T) {
	// ANDREW must not lex as AND + REW: a letter run that is not an
	// operator word splits into per-letter variables and invalids.
	tokens := Tokenize("ANDREW", []rune{'A', 'B', 'C', 'D'})

	wantKinds := []Kind{KindVar, KindInvalid, KindVar, KindInvalid, KindInvalid, KindInvalid}
	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(wantKinds))
	}
	for i, k := range wantKinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
	for _, tok := range tokens {
		if tok.Kind == KindAnd {
			t.Fatal("ANDREW tokenized an AND operator")
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("A AND (B)", []rune{'A', 'B'})

	want := []struct {
		start, end int
		lexeme     string
	}{
		{0, 1, "A"},
		{2, 5, "AND"},
		{6, 7, "("},
		{7, 8, "B"},
		{8, 9, ")"},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Start != w.start || tokens[i].End != w.end {
			t.Errorf("token %d (%s): got range %d-%d, want %d-%d",
				i, tokens[i].Lexeme, tokens[i].Start, tokens[i].End, w.start, w.end)
		}
		if tokens[i].Lexeme != w.lexeme {
			t.Errorf("token %d: got lexeme %q, want %q", i, tokens[i].Lexeme, w.lexeme)
		}
	}
}

func TestTokenizeBracketKinds(t *testing.T) {
	tokens := Tokenize("([{", nil)

	want := []BracketKind{BracketParen, BracketSquare, BracketCurly}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Bracket != w {
			t.Errorf("token %d: got bracket %s, want %s", i, tokens[i].Bracket, w)
		}
	}
}

func TestTokenizeCustomAlphabet(t *testing.T) {
	tokens := Tokenize("X AND Y", []rune{'X', 'Y', 'Z'})

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens %v, want 3", len(tokens), tokens)
	}
	if tokens[0].Kind != KindVar || tokens[0].Letter != 'X' {
		t.Errorf("token 0: got %v, want Var(X)", tokens[0])
	}
	if tokens[2].Kind != KindVar || tokens[2].Letter != 'Y' {
		t.Errorf("token 2: got %v, want Var(Y)", tokens[2])
	}

	// A is not in this alphabet.
	tokens = Tokenize("A", []rune{'X', 'Y', 'Z'})
	if len(tokens) != 1 || tokens[0].Kind != KindInvalid {
		t.Errorf("letter outside alphabet: got %v, want one invalid token", tokens)
	}
}

func TestNormalizeThenTokenize(t *testing.T) {
	tokens := Tokenize(Normalize("!(A&&B)||C^D"), []rune{'A', 'B', 'C', 'D'})

	want := []Kind{KindNot, KindLParen, KindVar, KindAnd, KindVar, KindRParen, KindOr, KindVar, KindXor, KindVar}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}
