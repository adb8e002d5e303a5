package lexer

import (
	"fmt"

	"tjs/internal/diag"
	"tjs/internal/source"
	"tjs/internal/token"
)

// ErrorKind classifies lexical failures.
type ErrorKind uint8

const (
	UnexpectedCharacter ErrorKind = iota + 1
	UnterminatedString
	InvalidEscape
	InvalidNumber
	UnterminatedComment
	InvalidOctet
)

var errorKindNames = [...]string{
	UnexpectedCharacter: "unexpected character",
	UnterminatedString:  "unterminated string",
	InvalidEscape:       "invalid escape",
	InvalidNumber:       "invalid number",
	UnterminatedComment: "unterminated comment",
	InvalidOctet:        "invalid octet",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "lexical error"
}

// Code maps the kind onto its stable diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnexpectedCharacter:
		return diag.LexUnknownChar
	case UnterminatedString:
		return diag.LexUnterminatedString
	case InvalidEscape:
		return diag.LexBadEscape
	case InvalidNumber:
		return diag.LexBadNumber
	case UnterminatedComment:
		return diag.LexUnterminatedComment
	case InvalidOctet:
		return diag.LexBadOctet
	default:
		return diag.UnknownCode
	}
}

// Error is the first lexical failure in an input.
type Error struct {
	Kind ErrorKind
	Pos  source.Pos
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}

// Code returns the diagnostic code of the error.
func (e *Error) Code() diag.Code { return e.Kind.Code() }

// errLex records the first error and produces the Invalid token for it.
func (lx *Lexer) errLex(kind ErrorKind, sp source.Span, msg string) token.Token {
	if lx.err == nil {
		lx.err = &Error{
			Kind: kind,
			Pos:  lx.file.PosAt(sp.Start),
			Span: sp,
			Msg:  msg,
		}
		lx.report(kind.Code(), sp, msg)
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
