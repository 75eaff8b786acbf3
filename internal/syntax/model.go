package syntax

import "regexp"

// LoosestTier is the right-associative ternary/assignment tier. An operator
// of this tier never replaces an equally loose split found to its left.
const LoosestTier = -10

// Model is immutable after NewModel returns.
type Model struct {
	precedence   map[string]int
	braces       map[string]string
	digraphs     map[string]string
	alternatives map[string]string
	highlightOps map[string]struct{}
	operators    map[string]struct{}
	bitwise      map[string]struct{}
	literals     []literalRule
	types        typeRules
}

func NewModel() *Model {
	m := &Model{
		precedence: make(map[string]int, 32),
		braces: map[string]string{
			"(": ")", "{": "}", "[": "]", "<:": ":>", "<%": "%>",
		},
		digraphs: map[string]string{
			"<:": "[", "<%": "{", ":>": "]", "%>": "}",
		},
		alternatives: map[string]string{
			"and": "&&", "or": "||", "xor": "^", "not": "!", "bitand": "&",
			"bitor": "|", "compl": "~", "and_eq": "&=", "or_eq": "|=", "xor_eq": "^=",
			"not_eq": "!=",
		},
		highlightOps: set(
			"~", "!", "+", "-", "*", "/", "%", "^", "&", "|", "=", "+=", "-=", "*=", "/=", "%=",
			"^=", "&=", "|=", "==", "!=", "<", ">", "<=", ">=", "<=>", "&&", "||", "<<", ">>",
			"<<=", ">>=", "++", "--", "and", "or", "xor", "not", "bitand", "bitor", "compl",
			"and_eq", "or_eq", "xor_eq", "not_eq",
		),
		operators: set(
			":", "...", "?", "::", ".", ".*", "->", "->*", "~", "!", "+", "-", "*", "/", "%", "^",
			"&", "|", "=", "+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=", "==", "!=", "<", ">",
			"<=", ">=", "<=>", "&&", "||", "<<", ">>", "<<=", ">>=", "++", "--", ",", "and", "or",
			"xor", "not", "bitand", "bitor", "compl", "and_eq", "or_eq", "xor_eq", "not_eq",
		),
		bitwise: set(
			"^", "&", "|", "^=", "&=", "|=", "xor", "bitand", "bitor", "and_eq", "or_eq", "xor_eq",
		),
	}
	tiers := []struct {
		prec int
		ops  []string
	}{
		{-1, []string{"<<", ">>"}},
		{-2, []string{"<=>"}},
		{-3, []string{"<", "<=", ">=", ">"}},
		{-4, []string{"==", "!="}},
		{-5, []string{"&"}},
		{-6, []string{"^"}},
		{-7, []string{"|"}},
		{-8, []string{"&&"}},
		{-9, []string{"||"}},
		{LoosestTier, []string{"?", ":", "=", "+=", "-=", "*=", "/=", "%=", "<<=", ">>=", "&=", "^=", "|="}},
		{-11, []string{","}},
	}
	for _, tier := range tiers {
		for _, op := range tier.ops {
			m.precedence[op] = tier.prec
		}
	}
	m.literals = compileLiteralRules()
	m.types = compileTypeRules()
	return m
}

func set(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}

// Precedence returns the tier of a canonical binary operator. Tiers are
// negative; a smaller value binds looser.
func (m *Model) Precedence(op string) (int, bool) {
	p, ok := m.precedence[op]
	return p, ok
}

// IsRightAssocTier reports whether p is the loosest, right-associative tier.
func IsRightAssocTier(p int) bool { return p == LoosestTier }

// NormalizeOp maps an alternative spelling (and, not_eq, ...) to its symbol.
func (m *Model) NormalizeOp(op string) string {
	if sym, ok := m.alternatives[op]; ok {
		return sym
	}
	return op
}

// NormalizeBrace maps a digraph (<: :> <% %>) to its bracket.
func (m *Model) NormalizeBrace(b string) string {
	if br, ok := m.digraphs[b]; ok {
		return br
	}
	return b
}

// ClosingBrace returns the closer for an opening bracket spelling.
// Angle brackets are not braces here.
func (m *Model) ClosingBrace(open string) (string, bool) {
	c, ok := m.braces[open]
	return c, ok
}

// IsBrace reports whether p opens or closes a bracket pair.
func (m *Model) IsBrace(p string) bool {
	switch m.NormalizeBrace(p) {
	case "(", ")", "{", "}", "[", "]":
		return true
	}
	return false
}

// IsOperator reports whether p is any operator spelling.
func (m *Model) IsOperator(p string) bool {
	_, ok := m.operators[p]
	return ok
}

// IsHighlightOperator reports whether p is styled as an operator rather than
// as structural punctuation.
func (m *Model) IsHighlightOperator(p string) bool {
	_, ok := m.highlightOps[p]
	return ok
}

// IsBitwise reports whether op is a bitwise operator in any spelling.
func (m *Model) IsBitwise(op string) bool {
	_, ok := m.bitwise[op]
	return ok
}

// typeRules are the prettifier's compiled patterns, see PrettifyType.
type typeRules struct {
	comma         *regexp.Regexp
	classPrefix   *regexp.Regexp
	basicString   *regexp.Regexp
	basicView     *regexp.Regexp
	allocator     *regexp.Regexp
	defaultDelete *regexp.Regexp
}
