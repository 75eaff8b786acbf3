package diag

import (
	"slices"
	"sync"
	"testing"

	"assertfmt/internal/source"
)

func TestBag_LimitAndSeverity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevInfo, Code: LexUnterminatedBlockComment}) {
		t.Fatal("first Add must succeed")
	}
	if !b.Add(Diagnostic{Severity: SevWarning, Code: ResolveAmbiguous}) {
		t.Fatal("second Add must succeed")
	}
	if b.Add(Diagnostic{Severity: SevError, Code: LexBadEscape}) {
		t.Fatal("Add past the limit must fail")
	}
	if b.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
	if !b.HasWarnings() {
		t.Error("HasWarnings() = false, want true")
	}
}

func TestBag_Sort(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Severity: SevInfo, Code: LexInfo, Primary: source.Span{Start: 5, End: 6}})
	b.Add(Diagnostic{Severity: SevInfo, Code: ResolveInfo, Primary: source.Span{Start: 1, End: 3}})
	b.Add(Diagnostic{Severity: SevError, Code: LexBadEscape, Primary: source.Span{Start: 1, End: 3}})
	b.Sort()
	var got []Code
	for _, d := range b.Items() {
		got = append(got, d.Code)
	}
	want := []Code{LexBadEscape, ResolveInfo, LexInfo}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBag_ConcurrentAdd(t *testing.T) {
	b := NewBag(1000)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				BagReporter{Bag: b}.Report(ResolveInfo, SevInfo, source.Span{}, "x", nil)
			}
		}()
	}
	wg.Wait()
	if b.Len() != 400 {
		t.Fatalf("Len() = %d, want 400", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexBadEscape:         "LEX1006",
		ResolveDepthExceeded: "RES2003",
		UnknownCode:          "E0000",
		Code(3001):           "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Error("unknown codes must fall back to the generic title")
	}
}

func TestReportBuilder_EmitOnce(t *testing.T) {
	b := NewBag(4)
	rb := NewReportBuilder(BagReporter{Bag: b}, SevWarning, ResolveAmbiguous, source.Span{Start: 0, End: 4}, "two splits").
		WithNote(source.Span{Start: 1, End: 2}, "first")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", b.Len())
	}
	if got := b.Items()[0].Notes; len(got) != 1 || got[0].Msg != "first" {
		t.Errorf("notes = %v", got)
	}
	NewReportBuilder(nil, SevError, LexBadEscape, source.Span{}, "dropped").WithNote(source.Span{}, "n").Emit()
}
