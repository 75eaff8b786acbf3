package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"assertfmt/internal/diag"
	"assertfmt/internal/source"
	"assertfmt/internal/token"
)

func TestPretty(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{Start: 5, End: 9},
		Notes:    []diag.Note{{Span: source.Span{Start: 0, End: 1}, Msg: "left operand"}},
	})
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, `x == "abc`, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "ERROR LEX1002: unterminated string literal\n" +
		"  | x == \"abc\n" +
		"  |      ^~~~\n" +
		"  note: left operand\n" +
		"  | x == \"abc\n" +
		"  | ^\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestExcerptMultiline(t *testing.T) {
	got := excerpt("a +\n  bb", source.Span{Start: 6, End: 8}, false)
	want := "  |   bb\n  |   ^~\n"
	if got != want {
		t.Fatalf("excerpt = %q, want %q", got, want)
	}
	if got := excerpt("ab", source.Span{Start: 9, End: 10}, false); got != "" {
		t.Fatalf("out of range excerpt = %q", got)
	}
}

func TestFormatTokens(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Identifier, Span: source.Span{Start: 0, End: 1}, Text: "a"},
		{Kind: token.Punctuation, Span: source.Span{Start: 1, End: 3}, Text: "<="},
	}
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	want := "  1: identifier     \"a\" at 0-1\n" +
		"  2: punctuation    \"<=\" at 1-3\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"text": "<="`) {
		t.Errorf("operator text must not be escaped:\n%s", buf.String())
	}
	var got []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Kind != "punctuation" || got[1].Span.End != 3 {
		t.Fatalf("json tokens = %+v", got)
	}
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	bag := diag.NewBag(8)
	for range 3 {
		bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.ResolveAmbiguous, Message: "m",
			Notes: []diag.Note{{Msg: "n"}}})
	}
	out := BuildDiagnosticsOutput(bag, JSONOpts{Max: 2})
	if out.Count != 3 || len(out.Diagnostics) != 2 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	if d := out.Diagnostics[0]; d.Code != "RES2002" || d.Notes != nil || d.Title != "Operands are ambiguous" {
		t.Fatalf("diag = %+v", d)
	}
	if out := BuildDiagnosticsOutput(bag, JSONOpts{IncludeNotes: true}); len(out.Diagnostics[0].Notes) != 1 {
		t.Fatal("notes dropped")
	}
}
