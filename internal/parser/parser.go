package parser

import (
	"log/slog"
	"slices"

	"tjs/internal/diag"
	"tjs/internal/lexer"
	"tjs/internal/source"
	"tjs/internal/token"
	"tjs/value"
)

type Options struct {
	// StrictKeys превращает повторный ключ словаря в ошибку DuplicateKey.
	StrictKeys bool
	// NormalizeNFC приводит строки и ключи к Unicode NFC.
	NormalizeNFC bool
	// Logger получает debug-записи о схлопнутых ключах; при nil молчим.
	Logger   *slog.Logger
	Reporter diag.Reporter
}

// Parser: состояние парсера на один вход
type Parser struct {
	lx       *lexer.Lexer // поток токенов (Peek/Next)
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	err      error       // первая ошибка; после неё разбор прекращается
}

// Parse разбирает ровно одно значение; после него допускаются только пробелы
// и комментарии.
func Parse(file *source.File, opts Options) (value.Value, error) {
	p := Parser{
		lx:   lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file: file,
		opts: opts,
	}
	v, ok := p.parseValue()
	if !ok {
		return value.Value{}, p.err
	}
	if tok := p.lx.Peek(); tok.Kind != token.EOF {
		if tok.Kind == token.Invalid {
			p.lexFail()
		} else {
			p.fail(TrailingData, tok, "end of input")
		}
		return value.Value{}, p.err
	}
	return v, nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}
