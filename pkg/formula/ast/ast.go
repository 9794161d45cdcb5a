package ast

import "fmt"

// Op identifies a binary operator.
type Op string

const (
	OpAnd  Op = "AND"
	OpOr   Op = "OR"
	OpNor  Op = "NOR"
	OpXor  Op = "XOR"
	OpXnor Op = "XNOR"
)

// Position is a half-open byte range [Start, End) in the normalized
// formula text. It lets callers highlight the exact source of a
// diagnostic without the engine knowing anything about rendering.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String returns "start-end" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// Node is a node of the formula syntax tree. Trees are immutable after
// parsing and owned by the CompiledFormula that produced them; sharing a
// tree between goroutines requires no locking.
type Node interface {
	// Pos reports the source range the node covers.
	Pos() Position

	node()
}

// Var references a phrase variable by its uppercase letter.
type Var struct {
	Letter   rune
	Position Position
}

// Not negates its child.
type Not struct {
	Child    Node
	Position Position
}

// BinOp applies a binary operator to two subtrees.
type BinOp struct {
	Op       Op
	Left     Node
	Right    Node
	Position Position
}

// Group wraps a bracketed subtree. Groups carry no semantics of their
// own; they are kept so diagnostics can point at the user's own
// parenthesization.
type Group struct {
	Child    Node
	Position Position
}

func (v *Var) Pos() Position   { return v.Position }
func (n *Not) Pos() Position   { return n.Position }
func (b *BinOp) Pos() Position { return b.Position }
func (g *Group) Pos() Position { return g.Position }

func (*Var) node()   {}
func (*Not) node()   {}
func (*BinOp) node() {}
func (*Group) node() {}

// String renders the node in canonical word-operator form, fully
// parenthesized so the structure is unambiguous.
func (v *Var) String() string { return string(v.Letter) }

func (n *Not) String() string { return fmt.Sprintf("NOT %s", render(n.Child)) }

func (b *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", render(b.Left), b.Op, render(b.Right))
}

func (g *Group) String() string { return render(g.Child) }

func render(n Node) string {
	return fmt.Sprintf("%v", n)
}
