package report

import (
	"fmt"
	"strings"

	"assertfmt/internal/source"
)

// Kind is the flavour of check that failed.
type Kind string

const (
	KindAssertion    Kind = "assertion"
	KindVerification Kind = "verification"
	KindCheck        Kind = "check"
	KindDebug        Kind = "debug"
)

// Title is the word that opens the report header.
func (k Kind) Title() string {
	switch k {
	case KindVerification:
		return "Verification"
	case KindCheck:
		return "Check"
	case KindDebug:
		return "Debug assertion"
	default:
		return "Assertion"
	}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindAssertion, KindVerification, KindCheck, KindDebug:
		return k, nil
	case "":
		return KindAssertion, nil
	default:
		return "", fmt.Errorf("unknown check kind %q", s)
	}
}

// Operand is one side of a binary check. Expr may be empty, then it is
// recovered from the expression text. Values holds the stringified value,
// one entry per display format.
type Operand struct {
	Expr   string   `json:"expr,omitempty" msgpack:"expr,omitempty" toml:"expr,omitempty"`
	Values []string `json:"values,omitempty" msgpack:"values,omitempty" toml:"values,omitempty"`
}

// Pair is one extra diagnostic line.
type Pair struct {
	Key   string `json:"key" msgpack:"key" toml:"key"`
	Value string `json:"value" msgpack:"value" toml:"value"`
}

// Check is one failed check as captured at the call site.
type Check struct {
	Kind            Kind            `json:"kind" msgpack:"kind" toml:"kind"`
	Macro           string          `json:"macro" msgpack:"macro" toml:"macro"`
	Expression      string          `json:"expression" msgpack:"expression" toml:"expression"`
	Operator        string          `json:"operator,omitempty" msgpack:"operator,omitempty" toml:"operator,omitempty"`
	Left            Operand         `json:"left" msgpack:"left" toml:"left"`
	Right           Operand         `json:"right" msgpack:"right" toml:"right"`
	MultipleFormats bool            `json:"multiple_formats,omitempty" msgpack:"multiple_formats,omitempty" toml:"multiple_formats,omitempty"`
	Message         string          `json:"message,omitempty" msgpack:"message,omitempty" toml:"message,omitempty"`
	Location        source.Location `json:"location" msgpack:"location" toml:"location"`
	Extra           []Pair          `json:"extra,omitempty" msgpack:"extra,omitempty" toml:"extra,omitempty"`
	Frames          []source.Frame  `json:"frames,omitempty" msgpack:"frames,omitempty" toml:"frames,omitempty"`
	HasArgs         bool            `json:"has_args,omitempty" msgpack:"has_args,omitempty" toml:"has_args,omitempty"`
}

// IsBinary reports whether the check has both operand values to show.
func (c *Check) IsBinary() bool {
	return c.Operator != "" && len(c.Left.Values) > 0 && len(c.Right.Values) > 0
}

// DefaultMacro is the macro name assumed when a record omits it.
func (k Kind) DefaultMacro() string {
	switch k {
	case KindVerification:
		return "VERIFY"
	case KindCheck:
		return "CHECK"
	case KindDebug:
		return "DEBUG_ASSERT"
	default:
		return "ASSERT"
	}
}

// Normalize validates the kind and fills defaults a capture layer may omit.
func (c *Check) Normalize() error {
	kind, err := ParseKind(string(c.Kind))
	if err != nil {
		return err
	}
	c.Kind = kind
	if c.Macro == "" {
		c.Macro = kind.DefaultMacro()
	}
	if c.Expression == "" {
		return fmt.Errorf("%s: empty expression", c.Location)
	}
	if (len(c.Left.Values) == 0) != (len(c.Right.Values) == 0) {
		return fmt.Errorf("%s: operand values given for one side only", c.Location)
	}
	return nil
}
