package lexer

import (
	"unicode"
	"unicode/utf8"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает руну в текущей позиции плюс n байт
func (lx *Lexer) peekRuneAt(n uint32) (r rune, size int) {
	off := lx.cursor.Off + n
	if off >= lx.cursor.Limit {
		return utf8.RuneError, 0
	}
	b := lx.src[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(lx.src[off:lx.cursor.Limit])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRuneAt(0)
	if sz == 0 {
		return
	}
	lx.cursor.Advance(sz)
}

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || isAlpha(b)
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}
func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return r != utf8.RuneError && unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// identContinuesAt reports whether an identifier character sits n bytes ahead.
func (lx *Lexer) identContinuesAt(n uint32) bool {
	r, sz := lx.peekRuneAt(n)
	return sz > 0 && isIdentContinueRune(r)
}

func (lx *Lexer) atIdentStart() bool {
	r, sz := lx.peekRuneAt(0)
	return sz > 0 && isIdentStartRune(r)
}

func isAlpha(b byte) bool { return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') }
func isDec(b byte) bool   { return b >= '0' && b <= '9' }
func isOct(b byte) bool   { return b >= '0' && b <= '7' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Проверка для кейса ".5": текущая точка, дальше цифра?
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}
