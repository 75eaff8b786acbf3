package lexer

import (
	"assertfmt/internal/diag"
	"assertfmt/internal/token"
)

// scanWhitespace коалесцирует пробелы, табы и переводы строк в один токен.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// skipLineComment съедает // до '\n', сам перевод строки остаётся пробелом.
func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// skipBlockComment съедает /* ... */. Незакрытый комментарий тянется до конца
// ввода без ошибки, только с info-диагностикой.
func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.Advance(2)
			return
		}
		lx.cursor.Bump()
	}
	lx.report(diag.LexUnterminatedBlockComment, diag.SevInfo, lx.cursor.SpanFrom(start), "unterminated block comment")
}
