package lexer

import (
	"assertfmt/internal/diag"
	"assertfmt/internal/token"
)

func (lx *Lexer) matchLiteralPrefix() string {
	for _, p := range token.LiteralPrefixes {
		if lx.cursor.HasPrefix(p) {
			return p
		}
	}
	return ""
}

// scanCharLiteral: prefix? ' (символ | escape) ' udl?
// Пустой, многосимвольный или незакрытый литерал считается ошибкой.
func (lx *Lexer) scanCharLiteral(prefixLen uint32) (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Advance(int(prefixLen))
	lx.cursor.Bump() // opening '\''
	switch lx.cursor.Peek() {
	case '\'':
		lx.cursor.Bump()
		return token.Token{}, lx.fail(diag.LexEmptyChar, start, "empty character literal")
	case '\\':
		if err := lx.readEscape(start); err != nil {
			return token.Token{}, err
		}
	default:
		if lx.cursor.EOF() {
			return token.Token{}, lx.fail(diag.LexUnterminatedChar, start, "unterminated character literal")
		}
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		return token.Token{}, lx.fail(diag.LexUnterminatedChar, start, "unterminated character literal")
	}
	lx.readOptionalUDLSuffix()
	return lx.emit(token.String, start), nil
}

// scanStringLiteral: prefix? ("..." udl? | R"delim(...)delim").
func (lx *Lexer) scanStringLiteral(prefixLen uint32) (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Advance(int(prefixLen))
	if lx.cursor.Peek() == 'R' {
		if err := lx.readRawString(start); err != nil {
			return token.Token{}, err
		}
		return lx.emit(token.String, start), nil
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' {
		if lx.cursor.Peek() == '\\' {
			if err := lx.readEscape(start); err != nil {
				return token.Token{}, err
			}
			continue
		}
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('"') {
		return token.Token{}, lx.fail(diag.LexUnterminatedString, start, "unterminated string literal")
	}
	lx.readOptionalUDLSuffix()
	return lx.emit(token.String, start), nil
}

// readRawString: разделитель: всё до '(' (разрешаем больше, чем грамматика).
func (lx *Lexer) readRawString(start Mark) error {
	lx.cursor.Advance(2) // R"
	dStart := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '(' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		return lx.fail(diag.LexUnterminatedRawString, start, "raw string literal without '('")
	}
	closing := ")" + lx.src[dStart:lx.cursor.Off] + `"`
	lx.cursor.Bump() // '('
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix(closing) {
			lx.cursor.Advance(len(closing))
			return nil
		}
		lx.cursor.Bump()
	}
	return lx.fail(diag.LexUnterminatedRawString, start, "unterminated raw string literal")
}

// readEscape разбирает escape-последовательность структурно: нам важно только
// не принять экранированную кавычку за конец литерала.
func (lx *Lexer) readEscape(start Mark) error {
	lx.cursor.Bump() // '\\'
	b := lx.cursor.Peek()
	switch {
	case isSimpleEscape(b):
		lx.cursor.Bump()
	case isOct(b):
		lx.cursor.Bump()
		for i := 0; i < 2 && isOct(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
	case b == 'o':
		lx.cursor.Bump()
		return lx.readBraced(start)
	case b == 'x':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '{' {
			return lx.readBraced(start)
		}
		if !isHex(lx.cursor.Peek()) {
			return lx.fail(diag.LexBadEscape, start, `\x used with no following hex digits`)
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	case b == 'u':
		lx.cursor.Bump()
		if lx.cursor.Peek() == '{' {
			return lx.readBraced(start)
		}
		return lx.readHexQuads(start, 1)
	case b == 'U':
		lx.cursor.Bump()
		return lx.readHexQuads(start, 2)
	case b == 'N':
		lx.cursor.Bump()
		return lx.readBraced(start)
	default:
		return lx.fail(diag.LexBadEscape, start, "invalid escape sequence")
	}
	return nil
}

func (lx *Lexer) readHexQuads(start Mark, quads int) error {
	for i := 0; i < 4*quads; i++ {
		if !isHex(lx.cursor.Peek()) {
			return lx.fail(diag.LexBadEscape, start, "incomplete universal character name")
		}
		lx.cursor.Bump()
	}
	return nil
}

// readBraced читает {...}; содержимое не проверяется.
func (lx *Lexer) readBraced(start Mark) error {
	if !lx.cursor.Eat('{') {
		return lx.fail(diag.LexBadEscape, start, "expected '{' in escape sequence")
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('}') {
		return lx.fail(diag.LexBadEscape, start, "unterminated braced escape sequence")
	}
	return nil
}

func isSimpleEscape(b byte) bool {
	switch b {
	case '\'', '"', '?', '\\', 'a', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	}
	return false
}
