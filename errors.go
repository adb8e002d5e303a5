package tjs

import (
	"fmt"

	"tjs/internal/diag"
	"tjs/internal/lexer"
	"tjs/internal/parser"
	"tjs/internal/source"
)

type (
	// Position is a byte offset with its 1-based line and column.
	Position = source.Pos

	// LexError reports malformed input at the token level.
	LexError     = lexer.Error
	LexErrorKind = lexer.ErrorKind

	// ParseError reports a token sequence that does not form a value.
	ParseError     = parser.Error
	ParseErrorKind = parser.ErrorKind
)

const (
	UnexpectedCharacter = lexer.UnexpectedCharacter
	UnterminatedString  = lexer.UnterminatedString
	InvalidEscape       = lexer.InvalidEscape
	InvalidNumber       = lexer.InvalidNumber
	UnterminatedComment = lexer.UnterminatedComment
	InvalidOctet        = lexer.InvalidOctet
)

const (
	UnexpectedToken = parser.UnexpectedToken
	ExpectedKey     = parser.ExpectedKey
	ExpectedValue   = parser.ExpectedValue
	TrailingData    = parser.TrailingData
	DuplicateKey    = parser.DuplicateKey
)

// ErrInputTooLarge is returned by Parse for inputs whose byte offsets do
// not fit in uint32.
var ErrInputTooLarge = source.ErrTooLarge

// DeserializeKind classifies failures of the typed bridge.
type DeserializeKind uint8

const (
	TypeMismatch DeserializeKind = iota + 1
	MissingField
	NumericOverflow
	UnknownField
	// Custom wraps an error returned by user decoding code.
	Custom
)

var deserializeKindNames = [...]string{
	TypeMismatch:    "type mismatch",
	MissingField:    "missing field",
	NumericOverflow: "numeric overflow",
	UnknownField:    "unknown field",
	Custom:          "invalid value",
}

func (k DeserializeKind) String() string {
	if k > 0 && int(k) < len(deserializeKindNames) {
		return deserializeKindNames[k]
	}
	return "deserialize error"
}

// Code maps the kind onto its stable diagnostic code.
func (k DeserializeKind) Code() diag.Code {
	switch k {
	case TypeMismatch:
		return diag.DesTypeMismatch
	case MissingField:
		return diag.DesMissingField
	case NumericOverflow:
		return diag.DesNumOverflow
	case UnknownField:
		return diag.DesUnknownField
	case Custom:
		return diag.DesInvalidValue
	default:
		return diag.UnknownCode
	}
}

// DeserializeError describes why a value could not be decoded into a typed
// target. Path locates the value inside the document; it is empty for the
// root.
type DeserializeError struct {
	Kind     DeserializeKind
	Path     string
	Field    string // MissingField, UnknownField
	Expected string // TypeMismatch, NumericOverflow
	Found    string // TypeMismatch, NumericOverflow
	Err      error  // Custom
}

// Message is the error text without the path.
func (e *DeserializeError) Message() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	case MissingField:
		return fmt.Sprintf("missing field %q", e.Field)
	case NumericOverflow:
		return fmt.Sprintf("%s does not fit in %s", e.Found, e.Expected)
	case UnknownField:
		return fmt.Sprintf("unknown field %q", e.Field)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String()
	}
}

func (e *DeserializeError) Error() string {
	if e.Path == "" {
		return "tjs: " + e.Message()
	}
	return "tjs: " + e.Path + ": " + e.Message()
}

func (e *DeserializeError) Unwrap() error { return e.Err }

func (e *DeserializeError) Code() diag.Code { return e.Kind.Code() }
