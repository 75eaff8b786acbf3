package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"assertfmt/internal/diag"
	"assertfmt/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <SEV> <CODE>: <Message>
// затем строку выражения с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, src string, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message); err != nil {
			return err
		}
		if _, err := io.WriteString(w, excerpt(src, d.Primary, opts.Color)); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  note: %s\n", n.Msg); err != nil {
				return err
			}
			if _, err := io.WriteString(w, excerpt(src, n.Span, opts.Color)); err != nil {
				return err
			}
		}
	}
	return nil
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// excerpt prints the line of src holding sp with the span underlined.
// Spans past the end of src print nothing.
func excerpt(src string, sp source.Span, colored bool) string {
	if int(sp.Start) > len(src) || sp.End < sp.Start {
		return ""
	}
	lineStart := strings.LastIndexByte(src[:sp.Start], '\n') + 1
	lineEnd := len(src)
	if i := strings.IndexByte(src[sp.Start:], '\n'); i >= 0 {
		lineEnd = int(sp.Start) + i
	}
	end := min(int(sp.End), lineEnd)
	line := src[lineStart:lineEnd]

	pad := runewidth.StringWidth(src[lineStart:sp.Start])
	mark := "^"
	if n := runewidth.StringWidth(src[int(sp.Start):max(end, int(sp.Start))]); n > 1 {
		mark += strings.Repeat("~", n-1)
	}
	if colored {
		mark = caretColor.Sprint(mark)
	}
	return "  | " + line + "\n  | " + strings.Repeat(" ", pad) + mark + "\n"
}
