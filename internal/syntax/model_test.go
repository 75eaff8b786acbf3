package syntax

import "testing"

func TestPrecedenceTiers(t *testing.T) {
	m := NewModel()
	cases := map[string]int{
		"<<": -1, ">>": -1, "<=>": -2, "<": -3, ">=": -3, "==": -4, "!=": -4,
		"&": -5, "^": -6, "|": -7, "&&": -8, "||": -9, "?": -10, "=": -10,
		">>=": -10, ",": -11,
	}
	for op, want := range cases {
		got, ok := m.Precedence(op)
		if !ok || got != want {
			t.Errorf("Precedence(%q) = %d, %v; want %d", op, got, ok, want)
		}
	}
	for _, op := range []string{"+", "*", "->", "and", "::"} {
		if _, ok := m.Precedence(op); ok {
			t.Errorf("Precedence(%q) should be unknown", op)
		}
	}
	if !IsRightAssocTier(-10) || IsRightAssocTier(-9) {
		t.Error("only the assignment tier is right-associative")
	}
}

func TestNormalize(t *testing.T) {
	m := NewModel()
	ops := map[string]string{
		"and": "&&", "or": "||", "xor": "^", "not": "!", "bitand": "&", "bitor": "|",
		"compl": "~", "and_eq": "&=", "or_eq": "|=", "xor_eq": "^=", "not_eq": "!=", "==": "==",
	}
	for in, want := range ops {
		if got := m.NormalizeOp(in); got != want {
			t.Errorf("NormalizeOp(%q) = %q, want %q", in, got, want)
		}
	}
	braces := map[string]string{"<:": "[", ":>": "]", "<%": "{", "%>": "}", "(": "("}
	for in, want := range braces {
		if got := m.NormalizeBrace(in); got != want {
			t.Errorf("NormalizeBrace(%q) = %q, want %q", in, got, want)
		}
	}
	if c, ok := m.ClosingBrace("<:"); !ok || c != ":>" {
		t.Errorf("ClosingBrace(<:) = %q, %v", c, ok)
	}
	if _, ok := m.ClosingBrace("<"); ok {
		t.Error("angle brackets are not braces")
	}
	if !m.IsBrace("%>") || m.IsBrace("<") {
		t.Error("IsBrace mismatch")
	}
}

func TestOperatorSets(t *testing.T) {
	m := NewModel()
	if !m.IsHighlightOperator("not_eq") || m.IsHighlightOperator("::") || m.IsHighlightOperator(",") {
		t.Error("highlight set mismatch")
	}
	if !m.IsOperator("::") || !m.IsOperator("->*") || m.IsOperator("(") {
		t.Error("operator set mismatch")
	}
	if !m.IsBitwise("bitand") || !m.IsBitwise("^=") || m.IsBitwise("&&") {
		t.Error("bitwise set mismatch")
	}
}

func TestLiteralFormat(t *testing.T) {
	m := NewModel()
	cases := map[string]Format{
		"0b1010":     FormatIntegerBinary,
		"0B1'0'1ull": FormatIntegerBinary,
		"0755":       FormatIntegerOctal,
		"0":          FormatDefault,
		"42":         FormatDefault,
		"1'000'000":  FormatDefault,
		"0xdeadBEEF": FormatIntegerHex,
		"0x1'F":      FormatIntegerHex,
		"1.5f":       FormatDefault,
		".5e-3":      FormatDefault,
		"0x1.8p+3":   FormatFloatHex,
		"0x1p-2L":    FormatFloatHex,
		"'a'":        FormatDefault,
		"foo":        FormatDefault,
	}
	for in, want := range cases {
		if got := m.LiteralFormat(in); got != want {
			t.Errorf("LiteralFormat(%q) = %v, want %v", in, got, want)
		}
	}
	if got := (FormatIntegerHex | FormatIntegerBinary).String(); got != "hex|binary" {
		t.Errorf("Format.String() = %q", got)
	}
}

func TestTrimSuffix(t *testing.T) {
	cases := map[string]string{
		"18446744073709551606ULL": "18446744073709551606",
		"1.5f":                    "1.5",
		"10":                      "10",
		"0x1Fz":                   "0x1",
	}
	for in, want := range cases {
		if got := TrimSuffix(in); got != want {
			t.Errorf("TrimSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrettifyType(t *testing.T) {
	m := NewModel()
	cases := map[string]string{
		"std::basic_string<char, std::char_traits<char>, std::allocator<char> >":                                  "std::string",
		"std::vector<int,std::allocator<int> >":                                                                   "std::vector<int>",
		"std::map<int , std::vector<int> >":                                                                       "std::map<int, std::vector<int>>",
		"class foo::bar":                                                                                          "foo::bar",
		"std::unique_ptr<S, std::default_delete<S> >":                                                            "std::unique_ptr<S>",
		"std::__cxx11::basic_string<char, std::char_traits<char>, std::allocator<char>>":                          "std::string",
		"std::basic_string_view<char, std::char_traits<char> >":                                                   "std::string_view",
		"void f(std::vector<std::basic_string<char, std::char_traits<char>, std::allocator<char> > > const&)": "void f(std::vector<std::string> const&)",
	}
	for in, want := range cases {
		if got := m.PrettifyType(in); got != want {
			t.Errorf("PrettifyType(%q)\n got %q\nwant %q", in, got, want)
		}
	}
}
