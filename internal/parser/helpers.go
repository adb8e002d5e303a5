package parser

import (
	"golang.org/x/text/unicode/norm"

	"tjs/internal/diag"
	"tjs/internal/source"
	"tjs/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect: ожидаем конкретный токен. Если нет, фиксируем ошибку и возвращаем false.
func (p *Parser) expect(k token.Kind, kind ErrorKind, expected string) (token.Token, bool) {
	tok := p.advance()
	if tok.Kind == k {
		return tok, true
	}
	if tok.Kind == token.Invalid {
		return tok, p.lexFail()
	}
	return tok, p.fail(kind, tok, expected)
}

// diagnosticSpan: для EOF указываем сразу за последним токеном
func (p *Parser) diagnosticSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

// fail фиксирует первую синтаксическую ошибку. Всегда возвращает false,
// чтобы вызывающий мог написать `return v, p.fail(...)`.
func (p *Parser) fail(kind ErrorKind, tok token.Token, expected string) bool {
	return p.failAt(kind, p.diagnosticSpan(tok), expected, tok.Describe())
}

func (p *Parser) failAt(kind ErrorKind, sp source.Span, expected, found string, notes ...diag.Note) bool {
	if p.err != nil {
		return false
	}
	e := &Error{
		Kind:     kind,
		Pos:      p.file.PosAt(sp.Start),
		Span:     sp,
		Expected: expected,
		Found:    found,
		Notes:    notes,
	}
	p.err = e
	b := diag.ReportError(p.opts.Reporter, kind.Code(), sp, e.Message())
	for _, n := range notes {
		b.WithNote(n.Span, n.Msg)
	}
	b.Emit()
	return false
}

// lexFail поднимает ошибку лексера как есть.
func (p *Parser) lexFail() bool {
	if p.err == nil {
		if lerr := p.lx.Err(); lerr != nil {
			p.err = lerr
		}
	}
	return false
}

// text возвращает строку с учётом NormalizeNFC
func (p *Parser) text(s string) string {
	if p.opts.NormalizeNFC {
		return norm.NFC.String(s)
	}
	return s
}
