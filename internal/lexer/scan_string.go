package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tjs/internal/token"
)

// Строки в "..." или '...'. Переводы строк внутри допустимы.
// Escape: \n \r \t \b \f \v \a \0 \\ \" \' \xH[H] \uHHHH.
var simpleEscapes = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'b':  '\b',
	'f':  '\f',
	'v':  '\v',
	'a':  '\a',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	var sb strings.Builder

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Str: sb.String()}

		case b == '\\':
			if tok, ok := lx.scanEscape(&sb); !ok {
				return tok
			}

		case b < utf8RuneSelf:
			sb.WriteByte(lx.cursor.Bump())

		default:
			escStart := lx.cursor.Mark()
			r, size := lx.peekRune()
			if r == utf8.RuneError && size <= 1 {
				lx.cursor.Bump()
				return lx.errLex(UnexpectedCharacter, lx.cursor.SpanFrom(escStart), "invalid UTF-8 sequence in string literal")
			}
			sb.WriteRune(r)
			lx.bumpRune(size)
		}
	}

	return lx.errLex(UnterminatedString, lx.cursor.SpanFrom(start), "string literal is not closed")
}

// scanEscape декодирует одну escape-последовательность в sb.
func (lx *Lexer) scanEscape(sb *strings.Builder) (token.Token, bool) {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		// незакрытая строка важнее битого escape
		return lx.errLex(UnterminatedString, lx.cursor.SpanFrom(escStart), "string literal is not closed"), false
	}
	c := lx.cursor.Peek()
	if v, ok := simpleEscapes[c]; ok {
		lx.cursor.Bump()
		sb.WriteByte(v)
		return token.Token{}, true
	}

	switch c {
	case 'x':
		lx.cursor.Bump()
		var v rune
		n := 0
		for n < 2 && isHex(lx.cursor.Peek()) {
			v = v<<4 | rune(hexVal(lx.cursor.Bump()))
			n++
		}
		if n == 0 {
			return lx.errLex(InvalidEscape, lx.cursor.SpanFrom(escStart), `\x escape needs hex digits`), false
		}
		sb.WriteRune(v)
		return token.Token{}, true

	case 'u':
		lx.cursor.Bump()
		v, ok := lx.readHex4()
		if !ok {
			return lx.errLex(InvalidEscape, lx.cursor.SpanFrom(escStart), `\u escape needs exactly 4 hex digits`), false
		}
		if utf16IsHighSurrogate(v) {
			// суррогатная пара склеивается в одну руну
			mark := lx.cursor.Mark()
			if lx.cursor.EatString(`\u`) {
				if lo, ok := lx.readHex4(); ok && utf16IsLowSurrogate(lo) {
					sb.WriteRune(utf16Decode(v, lo))
					return token.Token{}, true
				}
			}
			lx.cursor.Reset(mark)
			return lx.errLex(InvalidEscape, lx.cursor.SpanFrom(escStart), "unpaired surrogate in \\u escape"), false
		}
		if utf16IsLowSurrogate(v) {
			return lx.errLex(InvalidEscape, lx.cursor.SpanFrom(escStart), "unpaired surrogate in \\u escape"), false
		}
		sb.WriteRune(v)
		return token.Token{}, true
	}

	_, size := lx.peekRune()
	lx.bumpRune(max(size, 1))
	return lx.errLex(InvalidEscape, lx.cursor.SpanFrom(escStart), fmt.Sprintf("unknown escape %q", lx.text(lx.cursor.SpanFrom(escStart)))), false
}

func (lx *Lexer) readHex4() (rune, bool) {
	var v rune
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		v = v<<4 | rune(hexVal(lx.cursor.Bump()))
	}
	return v, true
}
