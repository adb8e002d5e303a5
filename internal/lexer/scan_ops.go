package lexer

import (
	"fmt"

	"tjs/internal/token"
)

// scanPunct распознаёт %[ [ ] , => ( ).
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	kind := token.Invalid

	switch ch {
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '=':
		if lx.cursor.Eat('>') {
			kind = token.FatArrow
		}
	case '%':
		// между % и [ допускаются пробелы
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Eat('[') {
			kind = token.DictOpen
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if kind == token.Invalid {
		lx.cursor.Reset(start)
		lx.cursor.Bump()
		return lx.errLex(UnexpectedCharacter, lx.cursor.SpanFrom(start), fmt.Sprintf("unexpected character %q", rune(ch)))
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanOctet читает <% 0a ff %>; пробелы допустимы только между парами.
func (lx *Lexer) scanOctet() token.Token {
	start := lx.cursor.Mark()
	if !lx.cursor.EatString("<%") {
		lx.cursor.Bump()
		return lx.errLex(UnexpectedCharacter, lx.cursor.SpanFrom(start), "unexpected character '<'")
	}
	var buf []byte
	for {
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.EatString("%>") {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.OctetLit, Span: sp, Text: lx.text(sp), Str: string(buf)}
		}
		if lx.cursor.EOF() {
			return lx.errLex(InvalidOctet, lx.cursor.SpanFrom(start), "octet literal is not closed")
		}
		hi, lo, ok := lx.cursor.Peek2()
		if !ok || !isHex(hi) || !isHex(lo) {
			lx.cursor.Bump()
			return lx.errLex(InvalidOctet, lx.cursor.SpanFrom(start), "octet literal expects pairs of hex digits")
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		buf = append(buf, hexVal(hi)<<4|hexVal(lo))
	}
}
