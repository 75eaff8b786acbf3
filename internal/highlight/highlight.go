package highlight

import (
	"regexp"
	"strings"

	"assertfmt/internal/lexer"
	"assertfmt/internal/syntax"
	"assertfmt/internal/token"
)

// Block is a run of text printed in one role.
type Block struct {
	Role Role
	Text string
}

var escapeRe = regexp.MustCompile(syntax.EscapePattern)

// Highlighter is immutable and safe for concurrent use.
type Highlighter struct {
	model  *syntax.Model
	scheme Scheme
}

func New(model *syntax.Model, scheme Scheme) *Highlighter {
	return &Highlighter{model: model, scheme: scheme}
}

func (h *Highlighter) Scheme() Scheme { return h.scheme }

// String highlights expr and flattens it with the highlighter's scheme.
func (h *Highlighter) String(expr string) string {
	return Flatten(h.Blocks(expr), h.scheme)
}

// Blocks never fails: input the lexer rejects comes back as one unstyled
// block holding expr unchanged.
func (h *Highlighter) Blocks(expr string) []Block {
	tokens, err := lexer.Tokenize(expr, lexer.Options{})
	if err != nil {
		return []Block{{Role: RoleNone, Text: expr}}
	}
	out := make([]Block, 0, len(tokens))
	for i, tok := range tokens {
		switch tok.Kind {
		case token.Keyword:
			out = append(out, Block{RoleKeyword, tok.Text})
		case token.Punctuation:
			if h.model.IsHighlightOperator(tok.Text) {
				out = append(out, Block{RoleOperator, tok.Text})
			} else {
				out = append(out, Block{RolePunctuation, tok.Text})
			}
		case token.NamedLiteral:
			out = append(out, Block{RoleNamedLiteral, tok.Text})
		case token.Number:
			out = append(out, Block{RoleNumber, tok.Text})
		case token.String:
			out = appendString(out, tok.Text)
		case token.Identifier:
			switch peekNonWhitespace(tokens, i).Text {
			case "(":
				out = append(out, Block{RoleCallIdentifier, tok.Text})
			case "::":
				out = append(out, Block{RoleScopeIdentifier, tok.Text})
			default:
				out = append(out, Block{RoleIdentifier, tok.Text})
			}
		case token.Unknown:
			out = append(out, Block{RoleUnknown, tok.Text})
		default:
			out = append(out, Block{RoleNone, tok.Text})
		}
	}
	return out
}

func peekNonWhitespace(tokens []token.Token, i int) token.Token {
	for _, tok := range tokens[i+1:] {
		if !tok.IsWhitespace() {
			return tok
		}
	}
	return token.Token{Kind: token.Whitespace}
}

// appendString splits a char or string literal into body and escape blocks.
// Raw strings have no escapes.
func appendString(out []Block, text string) []Block {
	if isRaw(text) {
		return append(out, Block{RoleString, text})
	}
	i := 0
	for _, loc := range escapeRe.FindAllStringIndex(text, -1) {
		if loc[0] > i {
			out = append(out, Block{RoleString, text[i:loc[0]]})
		}
		out = append(out, Block{RoleEscape, text[loc[0]:loc[1]]})
		i = loc[1]
	}
	if i < len(text) {
		out = append(out, Block{RoleString, text[i:]})
	}
	return out
}

func isRaw(text string) bool {
	for _, p := range token.LiteralPrefixes {
		if strings.HasPrefix(text, p+`R"`) {
			return true
		}
	}
	return strings.HasPrefix(text, `R"`)
}

// Flatten writes each block as style, text, reset. Unstyled blocks are
// written bare.
func Flatten(blocks []Block, scheme Scheme) string {
	var sb strings.Builder
	for _, b := range blocks {
		style := scheme.Style(b.Role)
		sb.WriteString(style)
		sb.WriteString(b.Text)
		if style != "" {
			sb.WriteString(scheme.Reset)
		}
	}
	return sb.String()
}

// Text concatenates block texts without any styling.
func Text(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Text)
	}
	return sb.String()
}
