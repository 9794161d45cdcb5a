// Package ast defines the syntax tree for search formulas.
//
// A formula tree is built once by the parser and never mutated
// afterwards, which makes a compiled formula safe to evaluate from many
// goroutines concurrently. The Walk helper drives the validator's
// semantic passes and any other read-only analysis.
package ast
