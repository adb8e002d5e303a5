package lexer

import (
	"errors"
	"math"
	"strconv"

	"fortio.org/safecast"

	"tjs/internal/source"
	"tjs/internal/token"
)

// scanNumber разбирает числовой литерал вместе с необязательным знаком.
// Поддерживаются: 123, 0x1A, 0b1010, 032 (восьмеричное), 1.5, .5, 1., 1e10,
// а также ±NaN и ±Infinity.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	neg := false
	if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
		neg = ch == '-'
		lx.cursor.Bump()
		if isIdentStartByte(lx.cursor.Peek()) {
			return lx.scanSignedWord(start, neg)
		}
		if !isDec(lx.cursor.Peek()) && !lx.isNumberAfterDot() {
			return lx.errLex(InvalidNumber, lx.cursor.SpanFrom(start), "expected digits after sign")
		}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			return lx.scanRadix(start, neg, 16, isHex, "hexadecimal")
		case 'b', 'B':
			return lx.scanRadix(start, neg, 2, isBin, "binary")
		}
	}

	digitsStart := lx.cursor.Off
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digitsEnd := lx.cursor.Off
	isReal := false

	if lx.cursor.Peek() == '.' {
		isReal = true
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		isReal = true
		lx.cursor.Bump()
		if ch := lx.cursor.Peek(); ch == '+' || ch == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumberTail(start, "exponent has no digits")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if lx.atNumberTail() {
		return lx.badNumberTail(start, "invalid character in numeric literal")
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if isReal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return lx.errLex(InvalidNumber, sp, "real literal out of range")
			}
			return lx.errLex(InvalidNumber, sp, "malformed real literal")
		}
		return token.Token{Kind: token.RealLit, Span: sp, Text: text, Real: f}
	}

	digits := string(lx.file.Content[digitsStart:digitsEnd])
	base := 10
	if len(digits) > 1 && digits[0] == '0' {
		// ведущий ноль: восьмеричная запись
		for i := 1; i < len(digits); i++ {
			if !isOct(digits[i]) {
				return lx.errLex(InvalidNumber, sp, "invalid digit "+strconv.QuoteRune(rune(digits[i]))+" in octal literal")
			}
		}
		base = 8
		digits = digits[1:]
	}
	return lx.intToken(sp, text, digits, base, neg)
}

// scanRadix читает 0x.. / 0b.. после необязательного знака.
func (lx *Lexer) scanRadix(start Mark, neg bool, base int, isDigit func(byte) bool, name string) token.Token {
	lx.cursor.Bump() // 0
	lx.cursor.Bump() // x|b
	digitsStart := lx.cursor.Off
	for isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	digits := string(lx.file.Content[digitsStart:lx.cursor.Off])
	if lx.atNumberTail() || lx.cursor.Peek() == '.' {
		return lx.badNumberTail(start, "invalid digit in "+name+" literal")
	}
	sp := lx.cursor.SpanFrom(start)
	if digits == "" {
		return lx.errLex(InvalidNumber, sp, name+" literal has no digits")
	}
	return lx.intToken(sp, lx.text(sp), digits, base, neg)
}

// scanSignedWord обрабатывает -Infinity, +Infinity, -NaN.
func (lx *Lexer) scanSignedWord(start Mark, neg bool) token.Token {
	lx.scanWord()
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	f, ok := token.LookupReal(text[1:])
	if !ok {
		return lx.errLex(InvalidNumber, sp, "expected digits after sign")
	}
	if neg {
		f = -f
	}
	return token.Token{Kind: token.RealLit, Span: sp, Text: text, Real: f}
}

func (lx *Lexer) intToken(sp source.Span, text, digits string, base int, neg bool) token.Token {
	mag, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return lx.errLex(InvalidNumber, sp, "integer literal overflows int64")
	}
	var v int64
	switch {
	case neg && mag == 1<<63:
		v = math.MinInt64
	default:
		v, err = safecast.Conv[int64](mag)
		if err != nil {
			return lx.errLex(InvalidNumber, sp, "integer literal overflows int64")
		}
		if neg {
			v = -v
		}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: v}
}

// atNumberTail: сразу за числом идёт буква или цифра, которая ему не принадлежит.
func (lx *Lexer) atNumberTail() bool {
	if lx.cursor.EOF() {
		return false
	}
	b := lx.cursor.Peek()
	if b >= utf8RuneSelf {
		r, _ := lx.peekRune()
		return isIdentContinueRune(r)
	}
	return isIdentContinueByte(b)
}

// badNumberTail съедает остаток слова, чтобы спан покрывал весь литерал.
func (lx *Lexer) badNumberTail(start Mark, msg string) token.Token {
	for !lx.cursor.EOF() && (lx.atNumberTail() || lx.cursor.Peek() == '.') {
		_, size := lx.peekRune()
		lx.bumpRune(size)
	}
	return lx.errLex(InvalidNumber, lx.cursor.SpanFrom(start), msg)
}
