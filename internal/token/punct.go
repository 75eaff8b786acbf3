package token

import (
	"cmp"
	"slices"
)

// Punctuators holds every operator and punctuator spelling, longest first
// (ties ordered A to Z), so the first prefix match is the longest match.
var Punctuators = sortLongestFirst([]string{
	"{", "}", "[", "]", "(", ")",
	"<:", ":>", "<%", "%>", ";", ":", "...",
	"?", "::", ".", ".*", "->", "->*", "~",
	"!", "+", "-", "*", "/", "%", "^", "&", "|",
	"=", "+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=",
	"==", "!=", "<", ">", "<=", ">=", "<=>", "&&", "||",
	"<<", ">>", "<<=", ">>=", "++", "--", ",",
})

// AlternativeOperators are keyword-like spellings of symbolic operators.
// They only match when not followed by an identifier character.
var AlternativeOperators = sortLongestFirst([]string{
	"and", "or", "xor", "not", "bitand", "bitor", "compl",
	"and_eq", "or_eq", "xor_eq", "not_eq",
})

// NamedLiterals are matched before identifiers.
var NamedLiterals = []string{"false", "true", "nullptr"}

// LiteralPrefixes are the encoding prefixes of char and string literals.
var LiteralPrefixes = []string{"u8", "u", "U", "L"}

func sortLongestFirst(in []string) []string {
	slices.SortStableFunc(in, func(a, b string) int {
		if len(a) != len(b) {
			return cmp.Compare(len(b), len(a))
		}
		return cmp.Compare(a, b)
	})
	return in
}
