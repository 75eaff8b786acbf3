package highlight

import "github.com/charmbracelet/x/ansi"

// Strip removes terminal escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
