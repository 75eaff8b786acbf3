package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the tracer that stores the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // "render", "record", "resolve:=="...
	Detail   string
	Dur      time.Duration     // only on KindSpanEnd
	Extra    map[string]string // only on KindSpanEnd
}

type wireEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	DurUS    int64             `json:"dur_us,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Encode renders ev in format. FormatAuto is treated as text.
func (ev *Event) Encode(format Format) []byte {
	if format == FormatNDJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false) // имена вида "resolve:<" остаются читаемыми
		err := enc.Encode(wireEvent{
			Time:     ev.Time.UTC().Format(time.RFC3339Nano),
			Seq:      ev.Seq,
			Kind:     ev.Kind.String(),
			Scope:    ev.Scope.String(),
			SpanID:   ev.SpanID,
			ParentID: ev.ParentID,
			Name:     ev.Name,
			Detail:   ev.Detail,
			DurUS:    ev.Dur.Microseconds(),
			Extra:    ev.Extra,
		})
		if err != nil {
			return nil
		}
		return buf.Bytes()
	}
	return ev.text()
}

var kindMarks = map[Kind]string{
	KindSpanBegin: "→",
	KindSpanEnd:   "←",
	KindPoint:     "•",
	KindHeartbeat: "♡",
}

// #000042   ← render (ok) 1.2ms {jobs=2}
func (ev *Event) text() []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%06d ", ev.Seq)
	sb.WriteString(strings.Repeat("  ", depthOf(ev.Scope)))
	sb.WriteString(kindMarks[ev.Kind])
	sb.WriteByte(' ')
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if ev.Kind == KindSpanEnd && ev.Dur > 0 {
		sb.WriteByte(' ')
		sb.WriteString(ev.Dur.Round(time.Microsecond).String())
	}
	if len(ev.Extra) > 0 {
		pairs := make([]string, 0, len(ev.Extra))
		for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			pairs = append(pairs, k+"="+ev.Extra[k])
		}
		fmt.Fprintf(&sb, " {%s}", strings.Join(pairs, ", "))
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}

func depthOf(s Scope) int {
	if s <= ScopeCommand {
		return 0
	}
	return int(s - ScopeCommand)
}
