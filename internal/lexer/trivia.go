package lexer

import (
	"tjs/internal/token"
)

// skipTrivia пропускает пробелы и комментарии.
// Возвращает Invalid токен и false, если блочный комментарий не закрыт.
func (lx *Lexer) skipTrivia() (token.Token, bool) {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isSpace(ch):
			lx.cursor.Bump()

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return token.Token{}, true
			}
			switch b1 {
			case '/':
				lx.skipLineComment()
			case '*':
				if tok, ok := lx.skipBlockComment(); !ok {
					return tok, false
				}
			default:
				return token.Token{}, true
			}

		default:
			return token.Token{}, true
		}
	}
	return token.Token{}, true
}

func (lx *Lexer) skipLineComment() {
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.EatString("*/") {
			return token.Token{}, true
		}
		lx.cursor.Bump()
	}
	return lx.errLex(UnterminatedComment, lx.cursor.SpanFrom(start), "block comment is not closed"), false
}
