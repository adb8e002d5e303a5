package lexer

import (
	"iter"

	"tjs/internal/source"
	"tjs/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	start  Mark         // начало после BOM
	look   *token.Token // 1 элементный буфер для токена
	err    *Error       // первая ошибка; после неё лексер стоит на месте
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	// UTF-8 BOM допустим только в самом начале
	lx.cursor.EatString("\xef\xbb\xbf")
	lx.start = lx.cursor.Mark()
	return lx
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF, после ошибки всегда Invalid.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.err != nil {
		return token.Token{Kind: token.Invalid, Span: lx.err.Span, Text: lx.text(lx.err.Span)}
	}

	if tok, ok := lx.skipTrivia(); !ok {
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch), ch == '+', ch == '-':
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanString()

	case ch == '<':
		return lx.scanOctet()

	default:
		return lx.scanPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Reset перематывает лексер в начало входа и сбрасывает ошибку.
func (lx *Lexer) Reset() {
	lx.cursor.Reset(lx.start)
	lx.look = nil
	lx.err = nil
}

// Tokens yields tokens lazily up to and including EOF or the first Invalid.
func (lx *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.Next()
			if !yield(tok) {
				return
			}
			if tok.Kind == token.EOF || tok.Kind == token.Invalid {
				return
			}
		}
	}
}

// Err returns the first lexical error, or nil.
func (lx *Lexer) Err() *Error {
	return lx.err
}

// File returns the input being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
