// Package token defines the lexical token kinds of check expressions and the
// static spelling tables shared by the lexer, resolver and highlighter.
// Invariants:
//   - Token.Text is a slice of the original expression (no copies).
//   - Token.Span matches Text exactly (Start..End), except for the two halves
//     of a decomposed ">>" which each cover one byte.
//   - true/false/nullptr are NamedLiteral, never Keyword.
//   - Alternative operator spellings (and, not_eq, ...) are Punctuation.
package token
