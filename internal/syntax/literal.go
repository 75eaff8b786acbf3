package syntax

import (
	"regexp"
	"strings"
)

// Format is a bit set of the ways a literal value can be shown.
type Format uint8

const (
	FormatDefault          Format = 0
	FormatIntegerHex       Format = 1 << 0
	FormatIntegerOctal     Format = 1 << 1
	FormatIntegerBinary    Format = 1 << 2
	FormatIntegerCharacter Format = 1 << 3
	FormatFloatHex         Format = 1 << 4
)

func (f Format) String() string {
	if f == FormatDefault {
		return "default"
	}
	var parts []string
	for _, n := range []struct {
		bit  Format
		name string
	}{
		{FormatIntegerHex, "hex"}, {FormatIntegerOctal, "octal"}, {FormatIntegerBinary, "binary"},
		{FormatIntegerCharacter, "character"}, {FormatFloatHex, "float_hex"},
	} {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

type literalRule struct {
	re     *regexp.Regexp
	format Format
}

func compileLiteralRules() []literalRule {
	const (
		intSuffix = `(?:[Uu](?:LL?|ll?|Z|z)?|(?:LL?|ll?|Z|z)[Uu]?)?`
		intBinary = `0[Bb][01](?:'?[01])*` + intSuffix
		// 0 сам по себе десятичный, а не восьмеричный
		intOctal   = `0(?:'?[0-7])+` + intSuffix
		intDecimal = `(?:0|[1-9](?:'?\d)*)` + intSuffix
		intHex     = `0[Xx][\da-fA-F](?:'?[\da-fA-F])*` + intSuffix
		digits     = `\d(?:'?\d)*`
		fraction   = `(?:(?:` + digits + `)?\.` + digits + `|` + digits + `\.)`
		exponent   = `(?:[Ee][\+-]?` + digits + `)`
		floatSfx   = `[FfLl]`
		floatDec   = `(?:` + fraction + exponent + `?|` + digits + exponent + `)` + floatSfx + `?`
		hexDigits  = `[\da-fA-F](?:'?[\da-fA-F])*`
		hexFrac    = `(?:(?:` + hexDigits + `)?\.` + hexDigits + `|` + hexDigits + `\.)`
		binExp     = `[Pp][\+-]?` + digits
		floatHex   = `0[Xx](?:` + hexFrac + `|` + hexDigits + `)` + binExp + floatSfx + `?`
		charLit    = `(?:u8|[UuL])?'(?:` + EscapePattern + `|[^\n'])*'`
	)
	rules := []struct {
		pattern string
		format  Format
	}{
		{intBinary, FormatIntegerBinary},
		{intOctal, FormatIntegerOctal},
		{intDecimal, FormatDefault},
		{intHex, FormatIntegerHex},
		{floatDec, FormatDefault},
		{floatHex, FormatFloatHex},
		{charLit, FormatDefault},
	}
	out := make([]literalRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, literalRule{re: regexp.MustCompile(`^(?:` + r.pattern + `)$`), format: r.format})
	}
	return out
}

// EscapePattern matches one escape sequence inside a char or string literal.
const EscapePattern = `\\[0-7]{1,3}|\\x[\da-fA-F]+|\\.`

// LiteralFormat classifies a literal by how its author spelled it, so a
// value can be echoed back in the same base. Non-literals get FormatDefault.
func (m *Model) LiteralFormat(expr string) Format {
	for _, r := range m.literals {
		if r.re.MatchString(expr) {
			return r.format
		}
	}
	return FormatDefault
}

// TrimSuffix strips integer and float suffix letters (FfUuLlZz) from the end.
func TrimSuffix(expr string) string {
	return strings.TrimRight(expr, "FfUuLlZz")
}
