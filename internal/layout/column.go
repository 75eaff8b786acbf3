package layout

import (
	"github.com/muesli/reflow/ansi"

	"assertfmt/internal/highlight"
)

// Column is one vertical strip of output. Width counts terminal cells;
// Width <= 0 disables wrapping for the column.
type Column struct {
	Width      int
	Blocks     []highlight.Block
	RightAlign bool
}

// Text is a shorthand for an unstyled column.
func Text(width int, text string) Column {
	if text == "" {
		return Column{Width: width}
	}
	return Column{Width: width, Blocks: []highlight.Block{{Role: highlight.RoleNone, Text: text}}}
}

// Blocks is a shorthand for a styled column.
func Blocks(width int, blocks []highlight.Block) Column {
	return Column{Width: width, Blocks: blocks}
}

// Right returns c aligned to the right edge.
func (c Column) Right() Column {
	c.RightAlign = true
	return c
}

// VisibleWidth returns the number of terminal cells s occupies, ignoring
// escape sequences.
func VisibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
