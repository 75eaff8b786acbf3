package token

import (
	"assertfmt/internal/source"
)

// Token represents a single expression token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token is punctuation spelled exactly as p.
func (t Token) Is(p string) bool {
	return t.Kind == Punctuation && t.Text == p
}

// IsWhitespace reports whether the token is whitespace.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsLiteral reports whether the token is a number, string or named literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, NamedLiteral:
		return true
	default:
		return false
	}
}

// IsTerm reports whether the token can stand alone as an operand.
// Unknown bytes are not terms.
func (t Token) IsTerm() bool {
	switch t.Kind {
	case Keyword, Number, String, NamedLiteral, Identifier:
		return true
	default:
		return false
	}
}
