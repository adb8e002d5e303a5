package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; the lexer error carries the details.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a bare word that is not a keyword.
	Ident
	// KwConst represents the 'const' qualifier.
	KwConst // const
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwNull represents the 'null' keyword.
	KwNull // null

	// IntLit represents an integer literal (decimal, hex, octal or binary).
	IntLit
	// RealLit represents a real literal, including NaN and Infinity.
	RealLit
	// StringLit represents a quoted string literal.
	StringLit
	// OctetLit represents an octet literal <% .. %>.
	OctetLit

	// DictOpen represents the dictionary opener.
	DictOpen // %[
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// FatArrow represents the pair separator.
	FatArrow // =>
	// LParen represents the left parenthesis of the (const) form.
	LParen // (
	// RParen represents the right parenthesis of the (const) form.
	RParen // )
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "end of input",
	Ident:     "identifier",
	KwConst:   "'const'",
	KwTrue:    "'true'",
	KwFalse:   "'false'",
	KwVoid:    "'void'",
	KwNull:    "'null'",
	IntLit:    "integer",
	RealLit:   "real",
	StringLit: "string",
	OctetLit:  "octet",
	DictOpen:  "'%['",
	LBracket:  "'['",
	RBracket:  "']'",
	Comma:     "','",
	FatArrow:  "'=>'",
	LParen:    "'('",
	RParen:    "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
