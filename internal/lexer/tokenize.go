package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"assertfmt/internal/token"
)

// Tokenize scans the whole expression. The only failure is a malformed
// character or string literal; unrecognised bytes become Unknown tokens.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	lx := New(src, opts)
	tokens := make([]token.Token, 0, len(src)/2+1)
	for {
		tok, err := lx.Next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Strict returns ErrUnknownToken when any token is Unknown.
func Strict(tokens []token.Token) error {
	for _, tok := range tokens {
		if tok.Kind == token.Unknown {
			return fmt.Errorf("%w %q at %s", ErrUnknownToken, tok.Text, tok.Span)
		}
	}
	return nil
}

// Join concatenates token texts.
func Join(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
