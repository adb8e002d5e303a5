package token

import "math"

var keywords = map[string]Kind{
	"const": KwConst,
	"true":  KwTrue,
	"false": KwFalse,
	"void":  KwVoid,
	"null":  KwNull,
}

// realWords are bare words that lex as RealLit.
var realWords = map[string]float64{
	"NaN":      math.NaN(),
	"Infinity": math.Inf(1),
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupReal reports whether ident spells a special real value.
func LookupReal(ident string) (float64, bool) {
	f, ok := realWords[ident]
	return f, ok
}
