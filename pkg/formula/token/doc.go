// Package token implements the lexical front end of the formula engine:
// operator normalization and tokenization.
//
// Formulas arrive in three surface syntaxes (word operators, ASCII symbol
// operators, and mixed case). Normalize folds the symbolic forms into
// canonical word operators so the tokenizer and parser only ever see one
// syntax. Tokenize then produces a flat, positioned token stream for the
// parser; it never fails, emitting KindInvalid tokens for anything it
// does not recognize.
package token
