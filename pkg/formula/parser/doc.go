// Package parser turns a token stream into a formula syntax tree.
//
// Grammar, loosest-binding first:
//
//	expr    = xorExpr { ("OR" | "NOR") xorExpr }
//	xorExpr = andExpr { ("XOR" | "XNOR") andExpr }
//	andExpr = unary { "AND" unary }
//	unary   = "NOT" unary | primary
//	primary = VAR | "(" expr ")" | "[" expr "]" | "{" expr "}"
//
// Malformed input is rejected with a *ParseError naming one of ten
// distinct failure kinds and the offending token's byte range, so the
// editor layer can highlight exactly what to fix.
package parser
