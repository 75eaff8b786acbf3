package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"assertfmt/internal/syntax"
)

func newHighlighter(s Scheme) *Highlighter {
	return New(syntax.NewModel(), s)
}

func TestBlocksClassification(t *testing.T) {
	h := newHighlighter(ANSIRGB)
	got := h.Blocks(`std::max(a, 10) != nullptr && !"x\n"`)
	want := []Block{
		{RoleScopeIdentifier, "std"},
		{RolePunctuation, "::"},
		{RoleCallIdentifier, "max"},
		{RolePunctuation, "("},
		{RoleIdentifier, "a"},
		{RolePunctuation, ","},
		{RoleNone, " "},
		{RoleNumber, "10"},
		{RolePunctuation, ")"},
		{RoleNone, " "},
		{RoleOperator, "!="},
		{RoleNone, " "},
		{RoleNamedLiteral, "nullptr"},
		{RoleNone, " "},
		{RoleOperator, "&&"},
		{RoleNone, " "},
		{RoleOperator, "!"},
		{RoleString, `"x`},
		{RoleEscape, `\n`},
		{RoleString, `"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestCallLookaheadSkipsWhitespace(t *testing.T) {
	h := newHighlighter(ANSIRGB)
	got := h.Blocks("f (x) and sizeof y")
	if got[0].Role != RoleCallIdentifier {
		t.Errorf("f: %v", got[0].Role)
	}
	var roles []Role
	for _, b := range got {
		if b.Text == "and" || b.Text == "sizeof" {
			roles = append(roles, b.Role)
		}
	}
	if diff := cmp.Diff([]Role{RoleOperator, RoleKeyword}, roles); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
}

func TestRawStringIsOneBlock(t *testing.T) {
	h := newHighlighter(ANSIRGB)
	got := h.Blocks(`R"x(a\nb)x"`)
	want := []Block{{RoleString, `R"x(a\nb)x"`}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestCharEscapes(t *testing.T) {
	h := newHighlighter(ANSIRGB)
	got := h.Blocks(`'\x41' == '\0'`)
	want := []Block{
		{RoleString, "'"}, {RoleEscape, `\x41`}, {RoleString, "'"},
		{RoleNone, " "}, {RoleOperator, "=="}, {RoleNone, " "},
		{RoleString, "'"}, {RoleEscape, `\0`}, {RoleString, "'"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestMalformedFallsBack(t *testing.T) {
	h := newHighlighter(ANSIRGB)
	expr := `a == "unterminated`
	got := h.Blocks(expr)
	want := []Block{{RoleNone, expr}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if h.String(expr) != expr {
		t.Fatalf("String must return input unchanged")
	}
}

func TestTextIsLossless(t *testing.T) {
	h := newHighlighter(ANSIBasic)
	for _, expr := range []string{
		"a < 1 == 2 > ( 1 + 3 )",
		`u8"é" != L'\''`,
		"größe == $x @ →",
		"x<::y>::z",
	} {
		if got := Text(h.Blocks(expr)); got != expr {
			t.Errorf("Text(Blocks(%q)) = %q", expr, got)
		}
		if got := Strip(h.String(expr)); got != expr {
			t.Errorf("Strip(String(%q)) = %q", expr, got)
		}
	}
}

func TestFlatten(t *testing.T) {
	blocks := []Block{{RoleNumber, "1"}, {RoleNone, " "}, {RoleOperator, "+"}}
	got := Flatten(blocks, ANSIRGB)
	want := "\x1b[38;2;86;194;192m1\x1b[0m \x1b[38;2;198;120;221m+\x1b[0m"
	if got != want {
		t.Fatalf("Flatten = %q, want %q", got, want)
	}
	if got := Flatten(blocks, ANSIBasic); got != "\x1b[36m1\x1b[0m \x1b[35m+\x1b[0m" {
		t.Fatalf("basic Flatten = %q", got)
	}
	if got := Flatten(blocks, Blank); got != "1 +" {
		t.Fatalf("blank Flatten = %q", got)
	}
}

func TestSchemeByName(t *testing.T) {
	for name, want := range map[string]string{"rgb": "rgb", "BASIC": "basic", "plain": "blank"} {
		s, err := SchemeByName(name)
		if err != nil || s.Name != want {
			t.Errorf("SchemeByName(%q) = %q, %v", name, s.Name, err)
		}
	}
	if _, err := SchemeByName("sepia"); err == nil {
		t.Error("expected error for unknown scheme")
	}
	if !strings.HasPrefix(ANSIRGB.Style(RoleString), "\x1b[38;2;150;205;112") {
		t.Error("rgb string colour mismatch")
	}
	if RoleScopeIdentifier.String() != "scope_identifier" {
		t.Error("role name mismatch")
	}
}
