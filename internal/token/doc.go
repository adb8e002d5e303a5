// Package token defines lexical token kinds for TJS2 literal notation.
// Invariants:
//   - Token.Text is the exact source lexeme; Token.Span matches it.
//   - Literal payloads are decoded by the lexer (escapes resolved, numbers
//     converted), so the parser never re-reads Text.
//   - Whitespace and comments never produce tokens.
//   - The `(const)` form is lexed as LParen, KwConst, RParen.
package token
