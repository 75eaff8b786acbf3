package lexer

import "testing"

func TestCursor_Basics(t *testing.T) {
	c := NewCursor("ab")
	if c.EOF() || c.Peek() != 'a' {
		t.Fatalf("fresh cursor: EOF=%v Peek=%q", c.EOF(), c.Peek())
	}
	if c.PeekAt(5) != 0 {
		t.Fatal("PeekAt past the end must return 0")
	}
	m := c.Mark()
	if !c.Eat('a') || c.Eat('a') {
		t.Fatal("Eat must consume only a matching byte")
	}
	if !c.HasPrefix("b") || c.HasPrefixAt(1, "b") {
		t.Fatal("HasPrefix mismatch")
	}
	if c.Advance(5) {
		t.Fatal("Advance past the end must fail")
	}
	c.Bump()
	if !c.EOF() || c.Bump() != 0 {
		t.Fatal("cursor must be at EOF")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatal("Reset must rewind")
	}
}
