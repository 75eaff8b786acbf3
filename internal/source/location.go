package source

import "strconv"

// Location identifies the call site of a failed check.
type Location struct {
	File     string `json:"file" msgpack:"file" toml:"file"`
	Line     uint32 `json:"line" msgpack:"line" toml:"line"`
	Function string `json:"function" msgpack:"function" toml:"function"`
}

// String formats the location as file:line.
func (l Location) String() string {
	return l.File + ":" + strconv.FormatUint(uint64(l.Line), 10)
}

// Frame is one already-symbolicated stack frame.
// Line 0 means the line is unknown.
type Frame struct {
	Path      string `json:"path" msgpack:"path" toml:"path"`
	Line      uint32 `json:"line" msgpack:"line" toml:"line"`
	Signature string `json:"signature" msgpack:"signature" toml:"signature"`
}

// LineString returns the line number or "?" when it is unknown.
func (f Frame) LineString() string {
	if f.Line == 0 {
		return "?"
	}
	return strconv.FormatUint(uint64(f.Line), 10)
}

// Same reports whether two frames point at the same code.
func (f Frame) Same(other Frame) bool {
	return f.Path == other.Path && f.Line == other.Line && f.Signature == other.Signature
}
