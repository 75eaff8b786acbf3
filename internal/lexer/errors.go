package lexer

import (
	"errors"
	"fmt"

	"assertfmt/internal/diag"
	"assertfmt/internal/source"
)

var (
	// ErrMalformedLiteral is wrapped by every error the lexer returns.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrUnknownToken is returned by Strict.
	ErrUnknownToken = errors.New("unknown token")
)

// Error describes where and why a literal could not be scanned.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrMalformedLiteral, e.Span, e.Msg)
}

func (e *Error) Unwrap() error { return ErrMalformedLiteral }

// fail records the first error, reports it and returns it.
func (lx *Lexer) fail(code diag.Code, start Mark, msg string) error {
	sp := lx.cursor.SpanFrom(start)
	lx.report(code, diag.SevError, sp, msg)
	return &Error{Code: code, Span: sp, Msg: msg}
}
