package eval

import (
	"strings"

	"finder-hq/spyglass/pkg/formula/ast"
)

// Binding ties a phrase variable to the literal substring it searches
// for. An empty Text means the variable always evaluates to false,
// whatever the case-sensitivity flag says.
type Binding struct {
	Letter        rune
	Text          string
	CaseSensitive bool
}

// BindingSet maps variable letters to their bindings. A scan treats the
// set as an immutable snapshot: edits made while a scan is running take
// effect only when a fresh scan starts with a fresh set.
type BindingSet map[rune]Binding

// NewBindingSet builds a set from the given bindings, keyed by their
// uppercase letters.
func NewBindingSet(bindings ...Binding) BindingSet {
	set := make(BindingSet, len(bindings))
	for _, b := range bindings {
		set[b.Letter] = b
	}
	return set
}

// Texts returns the letter-to-phrase-text mapping the validator's
// unbound-variable pass consumes.
func (s BindingSet) Texts() map[rune]string {
	texts := make(map[rune]string, len(s))
	for letter, b := range s {
		texts[letter] = b.Text
	}
	return texts
}

// Evaluate walks the formula tree against one piece of content and
// reports whether it matches. It is pure and total: no I/O, no shared
// state, no error path — a missing binding is simply false, never a
// panic. One tree may be evaluated from many goroutines concurrently.
func Evaluate(root ast.Node, bindings BindingSet, content string) bool {
	switch n := root.(type) {
	case *ast.Var:
		return matchVar(bindings[n.Letter], content)

	case *ast.Not:
		return !Evaluate(n.Child, bindings, content)

	case *ast.Group:
		return Evaluate(n.Child, bindings, content)

	case *ast.BinOp:
		left := Evaluate(n.Left, bindings, content)
		right := Evaluate(n.Right, bindings, content)
		switch n.Op {
		case ast.OpAnd:
			return left && right
		case ast.OpOr:
			return left || right
		case ast.OpNor:
			return !(left || right)
		case ast.OpXor:
			return left != right
		case ast.OpXnor:
			return left == right
		}
	}
	return false
}

// matchVar resolves one variable: literal substring containment, folded
// to lower case when the binding is case-insensitive.
func matchVar(b Binding, content string) bool {
	if b.Text == "" {
		return false
	}
	if b.CaseSensitive {
		return strings.Contains(content, b.Text)
	}
	return strings.Contains(strings.ToLower(content), strings.ToLower(b.Text))
}
