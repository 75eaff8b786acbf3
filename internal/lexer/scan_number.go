package lexer

import (
	"assertfmt/internal/token"
)

// scanNumber читает pp-number: [0-9a-zA-Z'.]+, где e/E/p/P со знаком
// съедаются вместе со знаком, затем необязательный UDL-суффикс (1._f).
// Валидность литерала не проверяется.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isDec(b) && !isAlpha(b) && b != '\'' && b != '.' {
			break
		}
		if isExponentMarker(b) && isSign(lx.cursor.PeekAt(1)) {
			lx.cursor.Advance(2)
			continue
		}
		lx.cursor.Bump()
	}
	lx.readOptionalUDLSuffix()
	return lx.emit(token.Number, start)
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'p' || b == 'P'
}

func isSign(b byte) bool { return b == '+' || b == '-' }
