package source

import "strconv"

// Span is a byte range inside an expression string.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) String() string {
	return strconv.FormatUint(uint64(s.Start), 10) + "-" + strconv.FormatUint(uint64(s.End), 10)
}

// Slice returns the text of src covered by s, or "" when s is out of range.
func (s Span) Slice(src string) string {
	if s.Start > s.End || int(s.End) > len(src) {
		return ""
	}
	return src[s.Start:s.End]
}
