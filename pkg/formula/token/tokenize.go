package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// operatorWords maps the canonical word operators to their token kinds.
// Matching is case-insensitive and whole-word: "ANDREW" is a letter run,
// not AND followed by REW.
var operatorWords = map[string]Kind{
	"AND":  KindAnd,
	"OR":   KindOr,
	"NOT":  KindNot,
	"NOR":  KindNor,
	"XOR":  KindXor,
	"XNOR": KindXnor,
}

var openBrackets = map[rune]BracketKind{
	'(': BracketParen,
	'[': BracketSquare,
	'{': BracketCurly,
}

var closeBrackets = map[rune]BracketKind{
	')': BracketParen,
	']': BracketSquare,
	'}': BracketCurly,
}

// Tokenize scans a normalized formula and returns its token stream.
// Offsets are byte offsets into the normalized string. Whitespace
// separates tokens and is discarded. Characters outside the grammar are
// emitted as KindInvalid tokens rather than dropped, so the parser can
// report them with a position.
//
// The alphabet is the set of letters recognized as phrase variables;
// letters are matched case-insensitively and reported uppercased.
func Tokenize(normalized string, alphabet []rune) []Token {
	lookup := make(map[rune]bool, len(alphabet))
	for _, letter := range alphabet {
		lookup[unicode.ToUpper(letter)] = true
	}

	var tokens []Token
	pos := 0
	for pos < len(normalized) {
		r, width := utf8.DecodeRuneInString(normalized[pos:])

		switch {
		case unicode.IsSpace(r):
			pos += width

		case openBrackets[r] != "":
			tokens = append(tokens, Token{
				Kind:    KindLParen,
				Lexeme:  string(r),
				Bracket: openBrackets[r],
				Start:   pos,
				End:     pos + width,
			})
			pos += width

		case closeBrackets[r] != "":
			tokens = append(tokens, Token{
				Kind:    KindRParen,
				Lexeme:  string(r),
				Bracket: closeBrackets[r],
				Start:   pos,
				End:     pos + width,
			})
			pos += width

		case unicode.IsLetter(r):
			end := pos
			for end < len(normalized) {
				next, nw := utf8.DecodeRuneInString(normalized[end:])
				if !unicode.IsLetter(next) {
					break
				}
				end += nw
			}
			tokens = append(tokens, scanWord(normalized[pos:end], pos, lookup)...)
			pos = end

		default:
			tokens = append(tokens, Token{
				Kind:   KindInvalid,
				Lexeme: string(r),
				Letter: r,
				Start:  pos,
				End:    pos + width,
			})
			pos += width
		}
	}
	return tokens
}

// scanWord classifies a maximal letter run starting at offset start.
// A run that spells an operator word becomes one operator token. Any
// other run is split per letter: alphabet letters become variables and
// the rest become invalid tokens, which keeps positions precise when the
// user types something like "AB" or "ANDREW".
func scanWord(word string, start int, alphabet map[rune]bool) []Token {
	if kind, ok := operatorWords[strings.ToUpper(word)]; ok {
		return []Token{{
			Kind:   kind,
			Lexeme: strings.ToUpper(word),
			Start:  start,
			End:    start + len(word),
		}}
	}

	var tokens []Token
	offset := start
	for _, r := range word {
		upper := unicode.ToUpper(r)
		width := utf8.RuneLen(r)
		if alphabet[upper] {
			tokens = append(tokens, Token{
				Kind:   KindVar,
				Lexeme: string(upper),
				Letter: upper,
				Start:  offset,
				End:    offset + width,
			})
		} else {
			tokens = append(tokens, Token{
				Kind:   KindInvalid,
				Lexeme: string(r),
				Letter: r,
				Start:  offset,
				End:    offset + width,
			})
		}
		offset += width
	}
	return tokens
}
