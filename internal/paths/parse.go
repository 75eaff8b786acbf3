package paths

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	unixSeparators    = "/"
	windowsSeparators = "/\\"
)

type Options struct {
	// Windows also splits on backslashes.
	Windows bool
}

func (o Options) separators() string {
	if o.Windows {
		return windowsSeparators
	}
	return unixSeparators
}

// ParsePath splits path into components without touching the filesystem.
// The first component is kept verbatim ("" for absolute paths, "." or ".."
// for relative ones). Later empty and "." components are dropped, and ".."
// removes the previous component unless that one is "." or "..".
//
//	/glibc-2.27/csu/../csu/libc-start.c -> "" glibc-2.27 csu libc-start.c
//	./../demo.exe                       -> . .. demo.exe
//
// Components are NFC-normalised so both Unicode spellings of a name merge.
func ParsePath(path string, opts Options) []string {
	seps := opts.separators()
	var parts []string
	for part := range splitSeq(path, seps) {
		if len(parts) == 0 {
			parts = append(parts, norm.NFC.String(part))
			continue
		}
		switch part {
		case "", ".":
		case "..":
			if last := parts[len(parts)-1]; last == "." || last == ".." {
				parts = append(parts, part)
			} else {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, norm.NFC.String(part))
		}
	}
	return parts
}

// splitSeq yields the pieces of s between any of the separator bytes,
// including empty ones.
func splitSeq(s, seps string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for {
			i := strings.IndexAny(s, seps)
			if i < 0 {
				yield(s)
				return
			}
			if !yield(s[:i]) {
				return
			}
			s = s[i+1:]
		}
	}
}

// Base returns the text after the last separator.
func Base(path string, opts Options) string {
	return path[strings.LastIndexAny(path, opts.separators())+1:]
}
