package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"assertfmt/internal/diag"
	"assertfmt/internal/lexer"
	"assertfmt/internal/token"
)

type tk struct {
	Kind token.Kind
	Text string
}

func kt(k token.Kind, s string) tk { return tk{Kind: k, Text: s} }

func p(s string) tk  { return kt(token.Punctuation, s) }
func id(s string) tk { return kt(token.Identifier, s) }
func num(s string) tk {
	return kt(token.Number, s)
}
func str(s string) tk { return kt(token.String, s) }

var ws = kt(token.Whitespace, " ")

func simplify(tokens []token.Token) []tk {
	out := make([]tk, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, tk{Kind: t.Kind, Text: t.Text})
	}
	return out
}

func expectTokens(t *testing.T, input string, decompose bool, want []tk) {
	t.Helper()
	got, err := lexer.Tokenize(input, lexer.Options{DecomposeShr: decompose})
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}
	if diff := cmp.Diff(want, simplify(got)); diff != "" {
		t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", input, diff)
	}
	for _, tok := range got {
		if tok.Span.Slice(input) != tok.Text {
			t.Fatalf("span %s of %q does not match text %q", tok.Span, input, tok.Text)
		}
	}
}

var allPunctuators = []string{
	"{", "}", "[", "]", "(", ")",
	"<:", ":>", "<%", "%>", ";", ":", "...",
	"?", "::", ".", ".*", "->", "->*", "~",
	"!", "+", "-", "*", "/", "%", "^", "&", "|",
	"=", "+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=",
	"==", "!=", "<", ">", "<=", ">=", "<=>", "&&", "||",
	"<<", ">>", "<<=", ">>=", "++", "--", ",",
}

var alternatives = []string{
	"and", "or", "xor", "not", "bitand", "bitor", "compl",
	"and_eq", "or_eq", "xor_eq", "not_eq",
}

func TestOperators(t *testing.T) {
	all := append(append([]string{}, allPunctuators...), alternatives...)
	var want []tk
	for i, s := range all {
		if i > 0 {
			want = append(want, ws)
		}
		want = append(want, p(s))
	}
	expectTokens(t, strings.Join(all, " "), false, want)
}

func TestOperatorsNoSpaces(t *testing.T) {
	ops := []string{
		"{", "}", "[", "]", "(", ")",
		"<:", ":>", "<%", "%>", ";", ":", "...",
		"?", "::", ".", ".*", "->", "->*", "~",
		"!", "+", "-", "*", "/", "%", "^", "&", "|",
		"~", // иначе получится |=
		"=", "+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=",
		"==", "!=", "<", ">", "<=", "~", ">=", "<=>", "&&", "||",
		"<<", ">>", "<<=", ">>=", "++", "--", ",",
	}
	want := make([]tk, 0, len(ops))
	for _, s := range ops {
		want = append(want, p(s))
	}
	expectTokens(t, strings.Join(ops, ""), false, want)
}

func TestAlternativeOperators(t *testing.T) {
	glued := strings.Join(alternatives, "")
	expectTokens(t, glued+" and<", false, []tk{id(glued), ws, p("and"), p("<")})
}

func TestDigraphEdgeCase(t *testing.T) {
	expectTokens(t, "<:<::std>:>", false, []tk{
		p("<:"), p("<"), p("::"), id("std"), p(">"), p(":>"),
	})
}

func TestShrDecomposition(t *testing.T) {
	expectTokens(t, "1 >> 2", true, []tk{num("1"), ws, p(">"), p(">"), ws, num("2")})
	expectTokens(t, "1 >>= 2", true, []tk{num("1"), ws, p(">>="), ws, num("2")})

	got, err := lexer.Tokenize("a>>b", lexer.Options{DecomposeShr: true})
	if err != nil {
		t.Fatal(err)
	}
	if got[1].Span.Start != 1 || got[2].Span.Start != 2 || got[2].Span.End-got[2].Span.Start != 1 {
		t.Fatalf("decomposed spans = %v %v", got[1].Span, got[2].Span)
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "foobar // 123", false, []tk{id("foobar"), ws})
	expectTokens(t, "1 /* foobar */ 2", false, []tk{num("1"), ws, ws, num("2")})
}

func TestUnterminatedBlockComment(t *testing.T) {
	bag := diag.NewBag(4)
	got, err := lexer.Tokenize("a /* never closed", lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("unterminated block comment must be accepted, got %v", err)
	}
	if diff := cmp.Diff([]tk{id("a"), ws}, simplify(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedBlockComment || items[0].Severity != diag.SevInfo {
		t.Fatalf("diagnostics = %v", items)
	}
}

func TestNamedLiterals(t *testing.T) {
	nl := func(s string) tk { return kt(token.NamedLiteral, s) }
	expectTokens(t, "false true nullptr falsetrue false1 nullptr-", false, []tk{
		nl("false"), ws, nl("true"), ws, nl("nullptr"), ws,
		id("falsetrue"), ws, id("false1"), ws, nl("nullptr"), p("-"),
	})
}

func TestCharLiterals(t *testing.T) {
	expectTokens(t, `'f''f'12 '\n' u8'\u1212''\N{foo'bar}' L'W''\''`, false, []tk{
		str("'f'"), str("'f'"), num("12"), ws,
		str(`'\n'`), ws,
		str(`u8'\u1212'`), str(`'\N{foo'bar}'`), ws,
		str("L'W'"), str(`'\''`),
	})
}

func TestStringLiterals(t *testing.T) {
	expectTokens(t, `"f""f"12 "\n" u8"\u1212""foobar""\N{foo"bar}" L"W""foo\"foo"`, false, []tk{
		str(`"f"`), str(`"f"`), num("12"), ws,
		str(`"\n"`), ws,
		str(`u8"\u1212"`), str(`"foobar"`), str(`"\N{foo"bar}"`), ws,
		str(`L"W"`), str(`"foo\"foo"`),
	})
}

func TestRawStringLiterals(t *testing.T) {
	expectTokens(t, `R"(a"b)" u8R"x(")")x"+1`, false, []tk{
		str(`R"(a"b)"`), ws, str(`u8R"x(")")x"`), p("+"), num("1"),
	})
}

func TestNumbers(t *testing.T) {
	in := "100 20 066 080 0x4fefe 0b101001010 .12 1. 1.f .12f 1e1 1e+2 1.e-2 0x1.1p+10"
	var want []tk
	for i, s := range strings.Fields(in) {
		if i > 0 {
			want = append(want, ws)
		}
		want = append(want, num(s))
	}
	expectTokens(t, in, false, want)
}

func TestUDLs(t *testing.T) {
	expectTokens(t, `'1'sv "12"sv 20uint 1._f 0x1.1p+10_foo 1+foo`, false, []tk{
		str("'1'sv"), ws, str(`"12"sv`), ws, num("20uint"), ws, num("1._f"), ws,
		num("0x1.1p+10_foo"), ws, num("1"), p("+"), id("foo"),
	})
}

func TestIdentifiersAndKeywords(t *testing.T) {
	kw := func(s string) tk { return kt(token.Keyword, s) }
	expectTokens(t, "12f f12 foo_bar200.0 break for() foo() this.foo this->foo char", false, []tk{
		num("12f"), ws, id("f12"), ws, id("foo_bar200"), num(".0"), ws,
		kw("break"), ws, kw("for"), p("("), p(")"), ws,
		id("foo"), p("("), p(")"), ws,
		kw("this"), p("."), id("foo"), ws,
		kw("this"), p("->"), id("foo"), ws, kw("char"),
	})
}

func TestUnicodeIdentifiersAndUnknown(t *testing.T) {
	expectTokens(t, "größe == $x @ →", false, []tk{
		id("größe"), ws, p("=="), ws, id("$x"), ws,
		kt(token.Unknown, "@"), ws, kt(token.Unknown, "→"),
	})
}

func TestInvalidInputIsRejected(t *testing.T) {
	cases := []string{
		"'foo'",
		"Error: Didn't return the correct result",
		"Error: Didn't return the correct result, or didn't return the right result",
		"''",
		`"never closed`,
		`'\q'`,
		`"\x"`,
		`'\u12'`,
		`R"abc`,
		`R"(abc`,
		`'\o{12'`,
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			bag := diag.NewBag(4)
			_, err := lexer.Tokenize(in, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
			if !errors.Is(err, lexer.ErrMalformedLiteral) {
				t.Fatalf("Tokenize(%q) error = %v, want ErrMalformedLiteral", in, err)
			}
			var lerr *lexer.Error
			if !errors.As(err, &lerr) {
				t.Fatalf("error %T is not *lexer.Error", err)
			}
			if !bag.HasErrors() {
				t.Fatal("malformed literal must be reported")
			}
		})
	}
}

func TestEscapes(t *testing.T) {
	for _, in := range []string{
		`'\0'`, `'\012'`, `'\o{17}'`, `'\x{1F}'`, `'\xff'`, `'\u{1F600}'`,
		`'\U0001F600'`, `'\N{LATIN SMALL LETTER A}'`, `'\?'`, `"\a\b\f\r\t\v"`,
	} {
		got, err := lexer.Tokenize(in, lexer.Options{})
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", in, err)
		}
		if len(got) != 1 || got[0].Kind != token.String {
			t.Fatalf("Tokenize(%q) = %v, want one string token", in, simplify(got))
		}
	}
}

func TestRegression1(t *testing.T) {
	expectTokens(t, "std::optional<std::vector<token_t>>: nullopt", false, []tk{
		id("std"), p("::"), id("optional"), p("<"), id("std"), p("::"), id("vector"),
		p("<"), id("token_t"), p(">>"), p(":"), ws, id("nullopt"),
	})
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a < 1 == 2 > ( 1 + 3 )",
		"std::map<int, std::vector<char>>{}.size() not_eq 0",
		"foo(\"a\\\"b\", 'c', R\"d(e)d\") >>= 0x1p-3f",
		"",
		"   \t\n",
	} {
		got, err := lexer.Tokenize(in, lexer.Options{DecomposeShr: true})
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", in, err)
		}
		if joined := lexer.Join(got); joined != in {
			t.Fatalf("Join(Tokenize(%q)) = %q", in, joined)
		}
	}
}

func TestStrict(t *testing.T) {
	good, _ := lexer.Tokenize("a + b", lexer.Options{})
	if err := lexer.Strict(good); err != nil {
		t.Fatalf("Strict() = %v, want nil", err)
	}
	bad, _ := lexer.Tokenize("a @ b", lexer.Options{})
	if err := lexer.Strict(bad); !errors.Is(err, lexer.ErrUnknownToken) {
		t.Fatalf("Strict() = %v, want ErrUnknownToken", err)
	}
}

func TestDeterminism(t *testing.T) {
	in := "x<y<z>> == w and not q"
	a, _ := lexer.Tokenize(in, lexer.Options{DecomposeShr: true})
	b, _ := lexer.Tokenize(in, lexer.Options{DecomposeShr: true})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("tokenization is not deterministic:\n%s", diff)
	}
}
