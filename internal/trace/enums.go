package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // ring only, dumped on failure
	LevelPhase               // command + stage boundaries
	LevelDetail              // per-record spans
	LevelDebug               // everything including resolver branches
)

// Scope is the granularity of an event. Coarser scopes have lower values.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1 // one CLI command
	ScopeStage                    // load, render, write
	ScopeRecord                   // one check record
	ScopeBranch                   // resolver parse-tree branches
)

// Kind is the type of an event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

// StorageMode determines where events end up.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // written as they happen
	ModeRing                          // last N kept in memory
	ModeBoth
)

// Format is the encoding of written events.
type Format uint8

const (
	FormatAuto   Format = iota // by output path extension
	FormatText                 // human-readable
	FormatNDJSON               // one JSON object per line
)

var (
	levelNames  = []string{"off", "error", "phase", "detail", "debug"}
	scopeNames  = []string{"", "command", "stage", "record", "branch"}
	kindNames   = []string{"", "begin", "end", "point", "heartbeat"}
	modeNames   = []string{"", "stream", "ring", "both"}
	formatNames = []string{"auto", "text", "ndjson"}
)

func nameOf(names []string, v uint8) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return "unknown"
}

func parseName(names []string, what, s string) (uint8, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name != "" && name == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("invalid trace %s: %q (expected: %s)", what, s, strings.Join(nonEmpty(names), "|"))
}

func nonEmpty(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func (l Level) String() string       { return nameOf(levelNames, uint8(l)) }
func (s Scope) String() string       { return nameOf(scopeNames, uint8(s)) }
func (k Kind) String() string        { return nameOf(kindNames, uint8(k)) }
func (m StorageMode) String() string { return nameOf(modeNames, uint8(m)) }
func (f Format) String() string      { return nameOf(formatNames, uint8(f)) }

// ParseLevel accepts a level name; the empty string means off.
func ParseLevel(s string) (Level, error) {
	if strings.TrimSpace(s) == "" {
		return LevelOff, nil
	}
	v, err := parseName(levelNames, "level", s)
	return Level(v), err
}

func ParseMode(s string) (StorageMode, error) {
	v, err := parseName(modeNames, "mode", s)
	if err != nil {
		return ModeRing, err
	}
	return StorageMode(v), nil
}

// ParseFormat accepts "json" as an alias for ndjson.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatNDJSON, nil
	}
	v, err := parseName(formatNames, "format", s)
	return Format(v), err
}

// ShouldEmit reports whether events of scope pass this level.
// LevelError keeps nothing on its own: its events come from the ring dump.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopeStage
	case LevelDetail:
		return scope <= ScopeRecord
	case LevelDebug:
		return true
	}
	return false
}
