package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)
	load := tm.Begin("load")
	tm.End(load, "3 checks")
	_ = tm.Measure("render", func() error { return errors.New("boom") })
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(r.Stages))
	}
	if r.Stages[0].DurationMS != 2 || r.Stages[0].Note != "3 checks" {
		t.Errorf("load = %+v", r.Stages[0])
	}
	if r.Stages[1].Note != "error: boom" {
		t.Errorf("render note = %q", r.Stages[1].Note)
	}
	if r.TotalMS != 4 {
		t.Errorf("total = %v, want 4", r.TotalMS)
	}
	s := tm.Summary()
	for _, want := range []string{"timings:\n", "load", "// 3 checks", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary lacks %q:\n%s", want, s)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Stages != nil {
		t.Fatalf("empty report = %+v", r)
	}
}
