package lexer

import (
	"io"

	"assertfmt/internal/token"
)

// Lexer scans one expression. Not safe for concurrent use; create one per call.
type Lexer struct {
	src    string
	cursor Cursor
	opts   Options
	look   []token.Token // второй '>' после разбиения ">>"
	err    error
}

func New(src string, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Next возвращает следующий токен. Комментарии пропускаются.
// После конца ввода возвращает io.EOF; после ошибки всегда возвращает её же.
func (lx *Lexer) Next() (token.Token, error) {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok, nil
	}
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	for {
		if lx.cursor.EOF() {
			return token.Token{}, io.EOF
		}
		tok, ok, err := lx.scan()
		if err != nil {
			lx.err = err
			return token.Token{}, err
		}
		if ok {
			return tok, nil
		}
	}
}

// scan reads one lexeme. ok is false for comments, which yield no token.
//
// Порядок важен:
//  1. пробелы и комментарии
//  2. литералы: до идентификаторов из-за R"()" и u8'x', до пунктуации из-за .1
//  3. пунктуация: до идентификаторов из-за and/or/not_eq
//  4. идентификаторы и ключевые слова
func (lx *Lexer) scan() (tok token.Token, ok bool, err error) {
	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		return lx.scanWhitespace(), true, nil
	case lx.cursor.HasPrefix("//"):
		lx.skipLineComment()
		return token.Token{}, false, nil
	case lx.cursor.HasPrefix("/*"):
		lx.skipBlockComment()
		return token.Token{}, false, nil
	}

	if lit, found := lx.matchNamedLiteral(); found {
		return lx.emitFixed(token.NamedLiteral, len(lit)), true, nil
	}

	prefix := lx.matchLiteralPrefix()
	n := uint32(len(prefix))
	switch q := lx.cursor.PeekAt(n); {
	case q == '\'':
		tok, err = lx.scanCharLiteral(n)
		return tok, err == nil, err
	case q == '"' || (q == 'R' && lx.cursor.PeekAt(n+1) == '"'):
		tok, err = lx.scanStringLiteral(n)
		return tok, err == nil, err
	}

	if isDec(ch) || lx.isNumberAfterDot() {
		return lx.scanNumber(), true, nil
	}
	if tok, found := lx.scanPunctuator(); found {
		return tok, true, nil
	}
	if tok, found := lx.scanAlternativeOperator(); found {
		return tok, true, nil
	}
	if lx.atIdentStart() {
		return lx.scanIdentOrKeyword(), true, nil
	}
	return lx.scanUnknown(), true, nil
}

func (lx *Lexer) emitFixed(kind token.Kind, n int) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(n)
	return lx.emit(kind, start)
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.src[sp.Start:sp.End]}
}
