package token

import "strings"

// symbolRewrites maps symbolic operators to their word forms. Order
// matters: two-character symbols must be rewritten before their
// one-character prefixes, otherwise "&&" would become "AND AND".
var symbolRewrites = []struct {
	symbol string
	word   string
}{
	{"&&", " AND "},
	{"||", " OR "},
	{"&", " AND "},
	{"|", " OR "},
	{"!", " NOT "},
	{"~", " NOT "},
	{"^", " XOR "},
}

// Normalize rewrites symbolic operators into canonical word operators and
// collapses runs of whitespace to single spaces. The result is trimmed.
//
// Normalize is idempotent: once the symbols are gone, a second pass only
// re-collapses whitespace that is already collapsed. It never fails;
// characters it does not understand are passed through for the tokenizer
// to flag.
func Normalize(raw string) string {
	normalized := raw
	for _, r := range symbolRewrites {
		normalized = strings.ReplaceAll(normalized, r.symbol, r.word)
	}
	return strings.Join(strings.Fields(normalized), " ")
}
