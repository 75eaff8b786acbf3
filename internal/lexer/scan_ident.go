package lexer

import (
	"assertfmt/internal/diag"
	"assertfmt/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через IsKeyword.
// Token.Text ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.readIdentifier()
	tok := lx.emit(token.Identifier, start)
	if token.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}

func (lx *Lexer) readIdentifier() {
	for {
		r, sz := lx.peekRuneAt(0)
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// readOptionalUDLSuffix съедает пользовательский суффикс литерала (sv, _km, ...).
func (lx *Lexer) readOptionalUDLSuffix() {
	if lx.atIdentStart() {
		lx.readIdentifier()
	}
}

func (lx *Lexer) matchNamedLiteral() (string, bool) {
	for _, lit := range token.NamedLiterals {
		if lx.cursor.HasPrefix(lit) && !lx.identContinuesAt(uint32(len(lit))) {
			return lit, true
		}
	}
	return "", false
}

// scanUnknown выдаёт один символ (руну, а для битого UTF-8 байт).
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	if _, sz := lx.peekRuneAt(0); sz > 1 {
		lx.bumpRune()
	} else {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Unknown, start)
	lx.report(diag.LexUnknownChar, diag.SevInfo, tok.Span, "unknown character "+quoteByteString(tok.Text))
	return tok
}

func quoteByteString(s string) string {
	const hex = "0123456789abcdef"
	out := make([]byte, 0, len(s)*4+2)
	out = append(out, '\'')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b < 0x7f {
			out = append(out, b)
			continue
		}
		out = append(out, '\\', 'x', hex[b>>4], hex[b&0xf])
	}
	return string(append(out, '\''))
}
