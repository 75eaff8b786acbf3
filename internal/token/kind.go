package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Keyword is a reserved word of the checked language.
	Keyword Kind = iota
	// Punctuation covers operators, brackets and alternative operator spellings.
	Punctuation
	// Number is a numeric literal including any user-defined suffix.
	Number
	// String is a character or string literal, raw or not, with its prefix.
	String
	// NamedLiteral is true, false or nullptr.
	NamedLiteral
	// Identifier is any non-keyword name.
	Identifier
	// Whitespace is a run of blanks, tabs and line breaks.
	Whitespace
	// Unknown is a single byte that matches no other rule.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Punctuation:
		return "punctuation"
	case Number:
		return "number"
	case String:
		return "string"
	case NamedLiteral:
		return "named_literal"
	case Identifier:
		return "identifier"
	case Whitespace:
		return "whitespace"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}
