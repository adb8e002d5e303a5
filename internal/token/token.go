package token

import (
	"tjs/internal/source"
)

// Token represents a single source token with its location and decoded payload.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	Str  string  // StringLit: escapes resolved; OctetLit: raw bytes
	Int  int64   // IntLit
	Real float64 // RealLit
}

// IsLiteral reports whether the token is a scalar literal or scalar keyword.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, StringLit, OctetLit, KwTrue, KwFalse, KwVoid, KwNull:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is structural punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case DictOpen, LBracket, RBracket, Comma, FatArrow, LParen, RParen:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwConst, KwTrue, KwFalse, KwVoid, KwNull:
		return true
	default:
		return false
	}
}

// Describe returns a short form for "found ..." messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF, Invalid:
		return t.Kind.String()
	case Ident:
		return "identifier '" + t.Text + "'"
	}
	if t.IsLiteral() && !t.IsKeyword() {
		return t.Kind.String() + " " + t.Text
	}
	return t.Kind.String()
}
