package parser

import (
	"fmt"

	"tjs/internal/diag"
	"tjs/internal/source"
)

// ErrorKind classifies syntax failures.
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota + 1
	ExpectedKey
	ExpectedValue
	TrailingData
	DuplicateKey
)

var errorKindNames = [...]string{
	UnexpectedToken: "unexpected token",
	ExpectedKey:     "expected key",
	ExpectedValue:   "expected value",
	TrailingData:    "trailing data",
	DuplicateKey:    "duplicate key",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "syntax error"
}

func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnexpectedToken:
		return diag.SynUnexpectedToken
	case ExpectedKey:
		return diag.SynExpectKey
	case ExpectedValue:
		return diag.SynExpectValue
	case TrailingData:
		return diag.SynTrailingData
	case DuplicateKey:
		return diag.SynDuplicateKey
	default:
		return diag.UnknownCode
	}
}

// Error is the first syntax failure in an input.
type Error struct {
	Kind     ErrorKind
	Pos      source.Pos
	Span     source.Span
	Expected string
	Found    string
	// Notes points at related places, e.g. the first occurrence of a
	// duplicate key.
	Notes []diag.Note
}

// Message is the error text without the position.
func (e *Error) Message() string {
	if e.Kind == DuplicateKey {
		return "duplicate key " + e.Found
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message())
}

func (e *Error) Code() diag.Code { return e.Kind.Code() }
