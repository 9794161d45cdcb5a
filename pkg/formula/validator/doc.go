// Package validator runs the semantic passes over a parsed formula:
// contradictions (blocking), tautologies (advisory), and variables
// referenced without a bound phrase (advisory). Structural problems are
// the parser's job; a parse failure short-circuits validation into a
// single-error result.
package validator
