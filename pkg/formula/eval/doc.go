// Package eval interprets a formula tree against text content.
//
// Evaluation is an explicit tree walk, not string substitution into a
// host-language expression: precedence was fixed at parse time and no
// dynamic code execution happens here. Both operands of every binary
// operator are pure, so evaluation order is unobservable.
package eval
