package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexBadEscape           Code = 1005
	LexBadOctet            Code = 1006

	// Синтаксические
	SynUnexpectedToken Code = 2001
	SynExpectKey       Code = 2002
	SynExpectValue     Code = 2003
	SynTrailingData    Code = 2004
	SynDuplicateKey    Code = 2005

	// Ошибки моста (десериализация в типизированные значения)
	DesTypeMismatch Code = 3001
	DesMissingField Code = 3002
	DesNumOverflow  Code = 3003
	DesUnknownField Code = 3004
	DesInvalidValue Code = 3005
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexUnknownChar:         "Unexpected character",
		LexUnterminatedString:  "Unterminated string literal",
		LexUnterminatedComment: "Unterminated block comment",
		LexBadNumber:           "Invalid numeric literal",
		LexBadEscape:           "Invalid escape sequence",
		LexBadOctet:            "Invalid octet literal",
		SynUnexpectedToken:     "Unexpected token",
		SynExpectKey:           "Expected dictionary key",
		SynExpectValue:         "Expected value",
		SynTrailingData:        "Trailing data after value",
		SynDuplicateKey:        "Duplicate dictionary key",
		DesTypeMismatch:        "Type mismatch",
		DesMissingField:        "Missing required field",
		DesNumOverflow:         "Numeric overflow",
		DesUnknownField:        "Unknown field",
		DesInvalidValue:        "Invalid value",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DES%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
