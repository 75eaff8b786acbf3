package report

import (
	"fmt"
	"strconv"
	"strings"

	"assertfmt/internal/highlight"
	"assertfmt/internal/layout"
	"assertfmt/internal/paths"
	"assertfmt/internal/source"
)

// internalMarker marks frames of the assertion machinery itself; they and
// everything above them are cut from the trace.
const internalMarker = "asserts::detail::"

// minFold is the shortest run of identical frames that gets folded.
const minFold = 4

// traceWindow returns the inclusive range of frames worth showing: from
// just below the assertion machinery down to main.
func traceWindow(frames []source.Frame) (start, end int) {
	end = len(frames) - 1
	for i, f := range frames {
		if strings.Contains(f.Signature, internalMarker) {
			start = i + 1
		}
		if f.Signature == "main" || strings.HasPrefix(f.Signature, "main(") {
			end = i
		}
	}
	if start > end {
		start = 0
	}
	return start, end
}

// foldLength returns how many frames after i repeat frames[i] and can be
// replaced by a banner, or 0.
func foldLength(frames []source.Frame, i, end int) int {
	if end-i < minFold {
		return 0
	}
	j := 1
	for ; i+j <= end; j++ {
		if !frames[i+j].Same(frames[i]) || frames[i+j].Signature == "??" {
			break
		}
	}
	if j < minFold {
		return 0
	}
	return j - 2
}

func (r *Renderer) resolveFiles(frames []source.Frame) (map[string]string, int, error) {
	h, err := paths.HandlerByMode(r.opts.PathMode, r.opts.PathOptions)
	if err != nil {
		return nil, 0, err
	}
	for _, f := range frames {
		if err := h.Add(f.Path); err != nil {
			return nil, 0, fmt.Errorf("stack trace: %w", err)
		}
	}
	if err := h.Finalize(); err != nil {
		return nil, 0, fmt.Errorf("stack trace: %w", err)
	}
	files := make(map[string]string, len(frames))
	longest := 0
	for _, f := range frames {
		if _, ok := files[f.Path]; ok {
			continue
		}
		short, err := h.Resolve(f.Path)
		if err != nil {
			return nil, 0, fmt.Errorf("stack trace: %w", err)
		}
		files[f.Path] = short
		longest = max(longest, width(short))
	}
	return files, min(longest, maxFileLength), nil
}

// signature highlights a prettified frame signature. The trailing "(" makes
// a bare function name read as a call.
func (r *Renderer) signature(sig string) []highlight.Block {
	blocks := r.hl.Blocks(r.model.PrettifyType(sig) + "(")
	if n := len(blocks); n > 0 && blocks[n-1].Text == "(" {
		return blocks[:n-1]
	}
	return blocks
}

func (r *Renderer) paint(role highlight.Role, s string) string {
	return highlight.Flatten([]highlight.Block{{Role: role, Text: s}}, r.opts.Scheme)
}

func (r *Renderer) writeStack(sb *strings.Builder, frames []source.Frame) error {
	if len(frames) == 0 {
		sb.WriteString("No stack trace available.\n")
		return nil
	}
	start, end := traceWindow(frames)
	window := frames[start : end+1]
	files, fileWidth, err := r.resolveFiles(window)
	if err != nil {
		return err
	}

	numberWidth := len(strconv.Itoa(len(window)))
	lineWidth := 0
	for _, f := range window {
		lineWidth = max(lineWidth, len(f.LineString()))
	}
	remaining := r.opts.Width - (2 + numberWidth + lineWidth + 3)
	wide := r.wide() && remaining >= 2
	fileWidth = min(fileWidth, remaining/2)

	for i := 0; i < len(window); i++ {
		f := window[i]
		number := strconv.Itoa(i + 1)
		if wide {
			sb.WriteString(layout.Wrap([]layout.Column{
				layout.Text(1, "#"),
				layout.Blocks(numberWidth, r.hl.Blocks(number)).Right(),
				layout.Text(fileWidth, files[f.Path]),
				layout.Blocks(lineWidth, r.hl.Blocks(f.LineString())).Right(),
				layout.Blocks(remaining-fileWidth, r.signature(f.Signature)),
			}, r.opts.Scheme))
		} else {
			fmt.Fprintf(sb, "#%s %s\n      at %s:%s\n",
				r.paint(highlight.RoleNumber, fmt.Sprintf("%2d", i+1)),
				highlight.Flatten(r.signature(f.Signature), r.opts.Scheme),
				files[f.Path],
				r.paint(highlight.RoleNumber, f.LineString()))
		}
		if folded := foldLength(window, i, len(window)-1); folded > 0 {
			i += folded
			banner := fmt.Sprintf("| %d layers of recursion were folded |", folded)
			edge := "|" + strings.Repeat(" ", len(banner)-2) + "|"
			for _, line := range []string{edge, banner, edge} {
				sb.WriteString(r.paint(highlight.RoleIdentifier, line))
				sb.WriteByte('\n')
			}
		}
	}
	return nil
}
