package parser

import (
	"strconv"

	"tjs/internal/diag"
	"tjs/internal/source"
	"tjs/internal/token"
	"tjs/value"
)

const expectContainer = "'[' or '%['"

// parseValue разбирает одно значение:
//
//	value := qualifier* ( dict | array ) | scalar
//	qualifier := 'const' | '(' 'const' ')'
func (p *Parser) parseValue() (value.Value, bool) {
	tok := p.advance()
	switch tok.Kind {
	case token.KwConst, token.LParen:
		return p.parseQualified(tok)
	case token.DictOpen:
		return p.parseDict()
	case token.LBracket:
		return p.parseArray()
	case token.IntLit:
		return value.Int(tok.Int), true
	case token.RealLit:
		return value.Real(tok.Real), true
	case token.StringLit:
		return value.Str(p.text(tok.Str)), true
	case token.OctetLit:
		return value.Octet([]byte(tok.Str)), true
	case token.KwTrue:
		return value.Bool(true), true
	case token.KwFalse:
		return value.Bool(false), true
	case token.KwVoid, token.KwNull:
		return value.Void(), true
	case token.Invalid:
		return value.Value{}, p.lexFail()
	default:
		return value.Value{}, p.fail(ExpectedValue, tok, "value")
	}
}

// parseQualified съедает цепочку const / (const) и требует контейнер после неё.
func (p *Parser) parseQualified(first token.Token) (value.Value, bool) {
	tok := first
	for {
		if tok.Kind == token.LParen {
			if _, ok := p.expect(token.KwConst, UnexpectedToken, "'const'"); !ok {
				return value.Value{}, false
			}
			if _, ok := p.expect(token.RParen, UnexpectedToken, "')'"); !ok {
				return value.Value{}, false
			}
		}
		if !p.atOr(token.KwConst, token.LParen) {
			break
		}
		tok = p.advance()
	}

	tok = p.advance()
	switch tok.Kind {
	case token.DictOpen:
		return p.parseDict()
	case token.LBracket:
		return p.parseArray()
	case token.Invalid:
		return value.Value{}, p.lexFail()
	default:
		return value.Value{}, p.fail(UnexpectedToken, tok, expectContainer)
	}
}

// parseArray: после '['; допускается завершающая запятая.
func (p *Parser) parseArray() (value.Value, bool) {
	var items []value.Value
	for {
		if p.at(token.RBracket) {
			p.advance()
			return value.Array(items...), true
		}
		v, ok := p.parseValue()
		if !ok {
			return value.Value{}, false
		}
		items = append(items, v)
		closed, ok := p.listTail()
		if !ok {
			return value.Value{}, false
		}
		if closed {
			return value.Array(items...), true
		}
	}
}

// parseDict: после '%['; ключи только строковые литералы.
func (p *Parser) parseDict() (value.Value, bool) {
	var b value.DictBuilder
	var first map[string]source.Span // span первого вхождения каждого ключа
	for {
		if p.at(token.RBracket) {
			p.advance()
			return b.Build(), true
		}
		keyTok := p.advance()
		switch keyTok.Kind {
		case token.StringLit:
		case token.Invalid:
			return value.Value{}, p.lexFail()
		default:
			return value.Value{}, p.fail(ExpectedKey, keyTok, "string key")
		}
		if _, ok := p.expect(token.FatArrow, UnexpectedToken, "'=>'"); !ok {
			return value.Value{}, false
		}
		v, ok := p.parseValue()
		if !ok {
			return value.Value{}, false
		}
		if first == nil {
			first = make(map[string]source.Span)
		}
		if !p.insert(&b, first, keyTok, v) {
			return value.Value{}, false
		}
		closed, ok := p.listTail()
		if !ok {
			return value.Value{}, false
		}
		if closed {
			return b.Build(), true
		}
	}
}

// insert применяет политику повторных ключей.
func (p *Parser) insert(b *value.DictBuilder, first map[string]source.Span, keyTok token.Token, v value.Value) bool {
	key := p.text(keyTok.Str)
	prev, dup := first[key]
	if !dup {
		first[key] = keyTok.Span
	}
	if p.opts.StrictKeys && dup {
		return p.failAt(DuplicateKey, keyTok.Span, "unique key", strconv.Quote(key),
			diag.Note{Span: prev, Msg: "first defined here"})
	}
	if b.Set(key, v) {
		pos := p.file.PosAt(keyTok.Span.Start)
		if p.opts.Logger != nil {
			p.opts.Logger.Debug("duplicate key collapsed", "key", key, "pos", pos.String())
		}
		diag.ReportWarning(p.opts.Reporter, diag.SynDuplicateKey, keyTok.Span, "duplicate key "+strconv.Quote(key)+" replaces earlier value").
			WithNote(prev, "first defined here").
			Emit()
	}
	return true
}

// listTail съедает ',' или закрывающую ']' после элемента.
func (p *Parser) listTail() (closed, ok bool) {
	tok := p.advance()
	switch tok.Kind {
	case token.Comma:
		return false, true
	case token.RBracket:
		return true, true
	case token.Invalid:
		return false, p.lexFail()
	default:
		return false, p.fail(UnexpectedToken, tok, "',' or ']'")
	}
}
