// Package diag defines the diagnostic model shared by the lexer, the parser
// and the typed bridge.
//
// Every error type in the module maps onto a Diagnostic: a severity, a stable
// Code (LEX1xxx lexical, SYN2xxx syntax, DES3xxx bridge), a short message, and
// an optional primary span. Lexer and parser stop at the first error, so a
// Diagnostic is normally produced from the returned error value rather than
// accumulated; Reporter and Bag exist for callers that want the finding pushed
// to them as it happens.
//
// Package diag does not perform any formatting. Rendering lives in
// internal/diagfmt.
package diag
