package paths

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"projects/libassert/demo.cpp", []string{"projects", "libassert", "demo.cpp"}},
		{"/glibc-2.27/csu/../csu/libc-start.c", []string{"", "glibc-2.27", "csu", "libc-start.c"}},
		{"./demo.exe", []string{".", "demo.exe"}},
		{"./../demo.exe", []string{".", "..", "demo.exe"}},
		{"../x.hpp", []string{"..", "x.hpp"}},
		{"/foo/./x", []string{"", "foo", "x"}},
		{"/foo//x", []string{"", "foo", "x"}},
		{"a/../b", []string{"b"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, ParsePath(tc.in, Options{})); diff != "" {
			t.Errorf("ParsePath(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
	got := ParsePath(`C:\src\..\lib\x.h`, Options{Windows: true})
	if diff := cmp.Diff([]string{"C:", "lib", "x.h"}, got); diff != "" {
		t.Errorf("windows (-want +got):\n%s", diff)
	}
	// NFD "é" equals NFC "é" after parsing
	if diff := cmp.Diff(ParsePath("a/caf\u00e9.c", Options{}), ParsePath("a/cafe\u0301.c", Options{})); diff != "" {
		t.Errorf("normalisation (-nfc +nfd):\n%s", diff)
	}
}

func TestTrieDisambiguate(t *testing.T) {
	trie := NewTrie("e")
	p1 := []string{"a", "b", "c", "d", "e"}
	p2 := []string{"a", "b", "f", "d", "e"}
	for _, p := range [][]string{p1, p2, p1} {
		if err := trie.Insert(p); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := trie.Disambiguate(p1); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("query before Finalize: %v", err)
	}
	trie.Finalize()
	if err := trie.Insert(p1); !errors.Is(err, ErrFinalized) {
		t.Fatalf("insert after Finalize: %v", err)
	}
	if trie.Branches() != 2 {
		t.Fatalf("branches = %d, want 2", trie.Branches())
	}
	for _, tc := range []struct {
		in   []string
		want []string
	}{
		{p1, []string{"c", "d", "e"}},
		{p2, []string{"f", "d", "e"}},
	} {
		got, err := trie.Disambiguate(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Disambiguate(%v) (-want +got):\n%s", tc.in, diff)
		}
	}
	if _, err := trie.Disambiguate([]string{"x", "y"}); !errors.Is(err, ErrForeignPath) {
		t.Errorf("foreign path: %v", err)
	}
	if _, err := trie.Disambiguate([]string{"a", "z", "e"}); !errors.Is(err, ErrUnknownPath) {
		t.Errorf("unknown path: %v", err)
	}
}

func TestTrieNestedSuffixes(t *testing.T) {
	trie := NewTrie("x.c")
	short := []string{"x.c"}
	mid := []string{"a", "x.c"}
	long := []string{"", "a", "x.c"}
	for _, p := range [][]string{short, mid, long} {
		if err := trie.Insert(p); err != nil {
			t.Fatal(err)
		}
	}
	trie.Finalize()
	if trie.Branches() != 3 {
		t.Fatalf("branches = %d, want 3", trie.Branches())
	}
	seen := map[string]bool{}
	for _, tc := range []struct {
		in   []string
		want []string
	}{
		{short, []string{"x.c"}},
		{mid, []string{"a", "x.c"}},
		{long, []string{"", "a", "x.c"}},
	} {
		got, err := trie.Disambiguate(tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Disambiguate(%v) (-want +got):\n%s", tc.in, diff)
		}
		key := strings.Join(got, "/")
		if seen[key] {
			t.Errorf("suffix %q returned for two paths", key)
		}
		seen[key] = true
	}
}

func TestTrieDiffersOnlyInFirstComponent(t *testing.T) {
	trie := NewTrie("f")
	for _, p := range [][]string{{"x", "f"}, {"y", "f"}} {
		if err := trie.Insert(p); err != nil {
			t.Fatal(err)
		}
	}
	trie.Finalize()
	a, _ := trie.Disambiguate([]string{"x", "f"})
	b, _ := trie.Disambiguate([]string{"y", "f"})
	if cmp.Equal(a, b) {
		t.Fatalf("both resolved to %v", a)
	}
}

func TestHandlers(t *testing.T) {
	paths := []string{
		"/home/u/proj/src/main.cpp",
		"/home/u/proj/src/util/io.cpp",
		"/home/u/proj/test/io.cpp",
		"/usr/include/c++/13/bits/stl_vector.h",
		"/home/u/proj/src/main.cpp",
	}
	cases := []struct {
		mode Mode
		want []string
	}{
		{ModeFull, paths},
		{ModeBasename, []string{"main.cpp", "io.cpp", "io.cpp", "stl_vector.h", "main.cpp"}},
		{ModeDisambiguated, []string{"main.cpp", "util/io.cpp", "test/io.cpp", "stl_vector.h", "main.cpp"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			h, err := HandlerByMode(tc.mode, Options{})
			if err != nil {
				t.Fatal(err)
			}
			for _, p := range paths {
				if err := h.Add(p); err != nil {
					t.Fatal(err)
				}
			}
			if err := h.Finalize(); err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, p := range paths {
				r, err := h.Resolve(p)
				if err != nil {
					t.Fatal(err)
				}
				got = append(got, r)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisambiguatingSuffixPaths(t *testing.T) {
	d := NewDisambiguating(Options{})
	paths := []string{"x.c", "a/x.c", "/a/x.c"}
	for _, p := range paths {
		if err := d.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Finalize(); err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, p := range paths {
		r, err := d.Resolve(p)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, r)
	}
	if diff := cmp.Diff(paths, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDisambiguatingLifecycle(t *testing.T) {
	d := NewDisambiguating(Options{})
	if err := d.Add("a/b.c"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Resolve("a/b.c"); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("resolve before finalize: %v", err)
	}
	if err := d.Finalize(); err != nil {
		t.Fatal(err)
	}
	if err := d.Add("x"); !errors.Is(err, ErrFinalized) {
		t.Fatalf("add after finalize: %v", err)
	}
	if _, err := d.Resolve("never/added.c"); !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("unknown: %v", err)
	}
	if _, err := ParseMode("weird"); err == nil {
		t.Fatal("expected ParseMode error")
	}
}
