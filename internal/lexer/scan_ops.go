package lexer

import (
	"assertfmt/internal/token"
)

// scanPunctuator: жадное совпадение по token.Punctuators (длинные первыми).
func (lx *Lexer) scanPunctuator() (token.Token, bool) {
	for _, p := range token.Punctuators {
		if !lx.cursor.HasPrefix(p) {
			continue
		}
		start := lx.cursor.Mark()
		lx.cursor.Advance(len(p))
		// "<::" это '<' и "::", а не диграф "[" и ':' (кроме <::: и <::>)
		if p == "<:" && lx.cursor.Peek() == ':' {
			if next := lx.cursor.PeekAt(1); next != ':' && next != '>' {
				lx.cursor.Reset(start)
				lx.cursor.Bump()
				return lx.emit(token.Punctuation, start), true
			}
		}
		if p == ">>" && lx.opts.DecomposeShr {
			lx.cursor.Reset(start)
			lx.cursor.Bump()
			first := lx.emit(token.Punctuation, start)
			second := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.look = append(lx.look, lx.emit(token.Punctuation, second))
			return first, true
		}
		return lx.emit(token.Punctuation, start), true
	}
	return token.Token{}, false
}

// scanAlternativeOperator: and, bitor, not_eq ... если дальше не идёт символ идентификатора.
func (lx *Lexer) scanAlternativeOperator() (token.Token, bool) {
	for _, op := range token.AlternativeOperators {
		if lx.cursor.HasPrefix(op) && !lx.identContinuesAt(uint32(len(op))) {
			return lx.emitFixed(token.Punctuation, len(op)), true
		}
	}
	return token.Token{}, false
}
