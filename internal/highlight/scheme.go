package highlight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Role classifies a block. RoleNone is printed without styling.
type Role uint8

const (
	RoleNone Role = iota
	RoleString
	RoleEscape
	RoleKeyword
	RoleNamedLiteral
	RoleNumber
	RolePunctuation
	RoleOperator
	RoleCallIdentifier
	RoleScopeIdentifier
	RoleIdentifier
	RoleAccent
	RoleUnknown
)

var roleNames = [...]string{
	RoleNone:            "none",
	RoleString:          "string",
	RoleEscape:          "escape",
	RoleKeyword:         "keyword",
	RoleNamedLiteral:    "named_literal",
	RoleNumber:          "number",
	RolePunctuation:     "punctuation",
	RoleOperator:        "operator",
	RoleCallIdentifier:  "call_identifier",
	RoleScopeIdentifier: "scope_identifier",
	RoleIdentifier:      "identifier",
	RoleAccent:          "accent",
	RoleUnknown:         "unknown",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", r)
}

// Scheme holds one escape sequence per role plus Reset.
type Scheme struct {
	Name            string
	String          string
	Escape          string
	Keyword         string
	NamedLiteral    string
	Number          string
	Punctuation     string
	Operator        string
	CallIdentifier  string
	ScopeIdentifier string
	Identifier      string
	Accent          string
	Unknown         string
	Reset           string
}

// Plain reports whether the scheme emits no escape sequences at all.
func (s Scheme) Plain() bool { return s.Reset == "" }

// Style returns the sequence that opens role r.
func (s Scheme) Style(r Role) string {
	switch r {
	case RoleString:
		return s.String
	case RoleEscape:
		return s.Escape
	case RoleKeyword:
		return s.Keyword
	case RoleNamedLiteral:
		return s.NamedLiteral
	case RoleNumber:
		return s.Number
	case RolePunctuation:
		return s.Punctuation
	case RoleOperator:
		return s.Operator
	case RoleCallIdentifier:
		return s.CallIdentifier
	case RoleScopeIdentifier:
		return s.ScopeIdentifier
	case RoleIdentifier:
		return s.Identifier
	case RoleAccent:
		return s.Accent
	case RoleUnknown:
		return s.Unknown
	default:
		return ""
	}
}

func sgr(attr color.Attribute) string { return fmt.Sprintf("\x1b[%dm", attr) }

func rgb(r, g, b uint8) string { return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b) }

// One Dark based palette.
var (
	rgbRed    = rgb(224, 107, 116)
	rgbOrange = rgb(209, 154, 102)
	rgbYellow = rgb(229, 192, 122)
	rgbGreen  = rgb(150, 205, 112)
	rgbBlue   = rgb(98, 174, 239)
	rgbCyan   = rgb(86, 194, 192)
	rgbPurple = rgb(198, 120, 221)
)

var (
	ANSIRGB = Scheme{
		Name:            "rgb",
		String:          rgbGreen,
		Escape:          rgbBlue,
		Keyword:         rgbPurple,
		NamedLiteral:    rgbOrange,
		Number:          rgbCyan,
		Operator:        rgbPurple,
		CallIdentifier:  rgbBlue,
		ScopeIdentifier: rgbYellow,
		Identifier:      rgbBlue,
		Accent:          rgbYellow,
		Unknown:         rgbRed,
		Reset:           sgr(color.Reset),
	}

	// ANSIBasic uses the 8 standard colours. Yellow stands in for orange and
	// scope identifiers are blue, which reads better on most terminals.
	ANSIBasic = Scheme{
		Name:            "basic",
		String:          sgr(color.FgGreen),
		Escape:          sgr(color.FgBlue),
		Keyword:         sgr(color.FgMagenta),
		NamedLiteral:    sgr(color.FgYellow),
		Number:          sgr(color.FgCyan),
		Operator:        sgr(color.FgMagenta),
		CallIdentifier:  sgr(color.FgBlue),
		ScopeIdentifier: sgr(color.FgBlue),
		Identifier:      sgr(color.FgBlue),
		Accent:          sgr(color.FgYellow),
		Unknown:         sgr(color.FgRed),
		Reset:           sgr(color.Reset),
	}

	Blank = Scheme{Name: "blank"}
)

// SchemeByName looks up a predefined scheme: rgb, basic or blank.
func SchemeByName(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "rgb", "ansi-rgb", "truecolor":
		return ANSIRGB, nil
	case "basic", "ansi", "ansi-basic":
		return ANSIBasic, nil
	case "blank", "none", "plain":
		return Blank, nil
	default:
		return Blank, fmt.Errorf("unknown color scheme %q (expected: rgb|basic|blank)", name)
	}
}
