// Package formula provides the boolean search-formula engine: compile a
// formula over named phrase variables, validate it, and evaluate it
// against arbitrary text.
//
// # Architecture
//
// The package is organized into subpackages, in dependency order:
//
//   - token: operator normalization and tokenization
//   - ast: immutable syntax tree definitions
//   - parser: precedence parsing with positioned errors
//   - validator: semantic passes (contradictions, tautologies, unbound variables)
//   - eval: the pure tree-walking evaluator
//   - diag: diagnostic values and the suggestion mapper
//
// # Basic usage
//
//	compiled, err := formula.Compile("(A OR B) AND NOT C")
//	if err != nil {
//	    var parseErr *parser.ParseError
//	    errors.As(err, &parseErr) // kind + position for highlighting
//	}
//
//	bindings := eval.NewBindingSet(
//	    eval.Binding{Letter: 'A', Text: "def"},
//	    eval.Binding{Letter: 'B', Text: "class"},
//	    eval.Binding{Letter: 'C', Text: "error"},
//	)
//	matched := compiled.Evaluate(bindings, "def foo(): return 1")
//
// Validation is independent of evaluation; callers that run searches
// should first check validator.Result.Blocked, which is true for parse
// errors and for blocking warnings such as a paradox.
package formula
