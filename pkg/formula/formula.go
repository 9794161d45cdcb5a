package formula

import (
	"strings"

	"finder-hq/spyglass/pkg/formula/ast"
	"finder-hq/spyglass/pkg/formula/diag"
	"finder-hq/spyglass/pkg/formula/eval"
	"finder-hq/spyglass/pkg/formula/parser"
	"finder-hq/spyglass/pkg/formula/token"
	"finder-hq/spyglass/pkg/formula/validator"
)

// DefaultAlphabet is the standard set of phrase variable letters.
var DefaultAlphabet = []rune{'A', 'B', 'C', 'D'}

// CompiledFormula is the immutable result of compiling a formula
// string. Compile once, then evaluate against any number of content
// strings and binding sets; the parse cost is amortized across an
// entire scan. A CompiledFormula is safe to share across goroutines.
type CompiledFormula struct {
	source     string
	normalized string
	root       ast.Node
}

// Option adjusts compilation.
type Option func(*options)

type options struct {
	alphabet []rune
}

// WithAlphabet overrides the set of letters recognized as phrase
// variables. The default is A through D.
func WithAlphabet(alphabet []rune) Option {
	return func(o *options) {
		o.alphabet = alphabet
	}
}

// Compile normalizes, tokenizes, and parses a formula. On failure the
// returned error is a *parser.ParseError carrying the failure kind and
// the offending position in the normalized text.
func Compile(text string, opts ...Option) (*CompiledFormula, error) {
	o := options{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&o)
	}

	normalized := token.Normalize(text)
	root, err := parser.Parse(token.Tokenize(normalized, o.alphabet))
	if err != nil {
		return nil, err
	}

	return &CompiledFormula{
		source:     text,
		normalized: normalized,
		root:       root,
	}, nil
}

// Source returns the formula text as the user wrote it.
func (f *CompiledFormula) Source() string { return f.source }

// Normalized returns the canonical word-operator form of the formula.
// Diagnostic positions are offsets into this string.
func (f *CompiledFormula) Normalized() string { return f.normalized }

// Root exposes the syntax tree for read-only analysis.
func (f *CompiledFormula) Root() ast.Node { return f.root }

// Letters returns the distinct variable letters the formula references,
// in first-appearance order.
func (f *CompiledFormula) Letters() []rune { return ast.Letters(f.root) }

// Evaluate reports whether the formula matches the given content under
// the given bindings. It never fails and performs no I/O.
func (f *CompiledFormula) Evaluate(bindings eval.BindingSet, content string) bool {
	return eval.Evaluate(f.root, bindings, content)
}

// Validate compiles a formula and runs the semantic passes against the
// given phrase texts. A parse failure yields a result holding exactly
// that error; semantic warnings never make the result invalid.
func Validate(text string, phraseTexts map[rune]string, opts ...Option) validator.Result {
	compiled, err := Compile(text, opts...)
	if err != nil {
		return validator.FromParseError(err)
	}
	return validator.Validate(compiled.root, phraseTexts)
}

// Suggest maps diagnostics to deduplicated remediation strings.
func Suggest(diagnostics []diag.Diagnostic) []string {
	return diag.Suggest(diagnostics)
}

// AutoConstruct builds the default formula for the given non-empty
// variables: the letters joined with AND, or the empty string when no
// letter is bound.
func AutoConstruct(letters []rune) string {
	if len(letters) == 0 {
		return ""
	}
	parts := make([]string, len(letters))
	for i, letter := range letters {
		parts[i] = string(letter)
	}
	return strings.Join(parts, " AND ")
}
