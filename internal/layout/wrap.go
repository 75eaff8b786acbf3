package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"assertfmt/internal/highlight"
)

type cell struct {
	width   int
	content strings.Builder
}

// Wrap renders columns into rows. A row ends after its last non-empty
// column; that column is not padded. Other columns are padded to their
// width and separated by a single space.
func Wrap(columns []Column, scheme highlight.Scheme) string {
	rows := [][]cell{make([]cell, len(columns))}
	for ci, col := range columns {
		line := 0
		for _, b := range col.Blocks {
			style := scheme.Style(b.Role)
			text := b.Text
			for text != "" {
				if line == len(rows) {
					rows = append(rows, make([]cell, len(columns)))
				}
				c := &rows[line][ci]
				room := -1
				if col.Width > 0 {
					room = col.Width - c.width
				}
				chunk, consumed, newline := take(text, room, c.width == 0)
				text = text[consumed:]
				if chunk != "" {
					c.content.WriteString(style)
					c.content.WriteString(chunk)
					if style != "" {
						c.content.WriteString(scheme.Reset)
					}
					c.width += runewidth.StringWidth(chunk)
				}
				if newline || consumed == 0 || (col.Width > 0 && c.width >= col.Width) {
					line++
				}
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		last := 0
		for i := range row {
			if row[i].content.Len() > 0 {
				last = i
			}
		}
		for i := 0; i <= last; i++ {
			c := &row[i]
			pad := 0
			if i != last && columns[i].Width > c.width {
				pad = columns[i].Width - c.width
			}
			if columns[i].RightAlign {
				sb.WriteString(strings.Repeat(" ", pad))
				sb.WriteString(c.content.String())
			} else {
				sb.WriteString(c.content.String())
				sb.WriteString(strings.Repeat(" ", pad))
			}
			if i == last {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// take returns the prefix of text that fits into room cells (room < 0 means
// no limit). A newline ends the prefix and is consumed without being
// printed. force lets a rune wider than room through on an empty line.
func take(text string, room int, force bool) (chunk string, consumed int, newline bool) {
	used := 0
	for i, r := range text {
		if r == '\n' {
			return text[:i], i + 1, true
		}
		w := runewidth.RuneWidth(r)
		if room >= 0 && used+w > room && !(force && i == 0) {
			return text[:i], i, false
		}
		used += w
		if room >= 0 && used >= room {
			_, size := utf8.DecodeRuneInString(text[i:])
			return text[:i+size], i + size, false
		}
	}
	return text, len(text), false
}
