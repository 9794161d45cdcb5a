package ast

// Visitor receives every node during a Walk. Returning an error stops
// the traversal and propagates the error to the Walk caller.
type Visitor interface {
	Visit(Node) error
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(Node) error

// Visit calls the wrapped function.
func (f VisitorFunc) Visit(n Node) error { return f(n) }

// Walk traverses the tree rooted at n in preorder and calls the visitor
// for each node. It returns the first error the visitor reports, or nil
// once the whole tree has been visited.
func Walk(n Node, visitor Visitor) error {
	if n == nil {
		return nil
	}
	if err := visitor.Visit(n); err != nil {
		return err
	}

	switch node := n.(type) {
	case *Not:
		return Walk(node.Child, visitor)
	case *Group:
		return Walk(node.Child, visitor)
	case *BinOp:
		if err := Walk(node.Left, visitor); err != nil {
			return err
		}
		return Walk(node.Right, visitor)
	}
	return nil
}

// Letters collects the distinct variable letters referenced anywhere in
// the tree, in first-appearance order.
func Letters(n Node) []rune {
	var letters []rune
	seen := make(map[rune]bool)

	Walk(n, VisitorFunc(func(node Node) error {
		if v, ok := node.(*Var); ok && !seen[v.Letter] {
			seen[v.Letter] = true
			letters = append(letters, v.Letter)
		}
		return nil
	}))
	return letters
}

// Unwrap strips Group wrappers so structural passes can match node
// patterns without caring how the user parenthesized them.
func Unwrap(n Node) Node {
	for {
		g, ok := n.(*Group)
		if !ok {
			return n
		}
		n = g.Child
	}
}
