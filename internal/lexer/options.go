package lexer

import (
	"tjs/internal/diag"
	"tjs/internal/source"
)

type Options struct {
	// Reporter получает копию первой лексической ошибки; может быть nil.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
