package lexer

import (
	"fmt"

	"tjs/internal/token"
)

// scanIdentOrKeyword читает слово и классифицирует его:
// ключевое слово, NaN/Infinity или обычный Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	r, size := lx.peekRune()
	if !isIdentStartRune(r) {
		if r == utf8RuneError && size <= 1 {
			lx.cursor.Bump()
			return lx.errLex(UnexpectedCharacter, lx.cursor.SpanFrom(start), "invalid UTF-8 sequence")
		}
		lx.bumpRune(size)
		return lx.errLex(UnexpectedCharacter, lx.cursor.SpanFrom(start), fmt.Sprintf("unexpected character %q", r))
	}
	lx.scanWord()

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	if f, ok := token.LookupReal(text); ok {
		return token.Token{Kind: token.RealLit, Span: sp, Text: text, Real: f}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanWord съедает хвост идентификатора
func (lx *Lexer) scanWord() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, size := lx.peekRune()
		if !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune(size)
	}
}
