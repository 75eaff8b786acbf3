package report

import (
	"fmt"
	"strings"

	"assertfmt/internal/diag"
	"assertfmt/internal/highlight"
	"assertfmt/internal/layout"
	"assertfmt/internal/paths"
	"assertfmt/internal/resolve"
	"assertfmt/internal/syntax"
	"assertfmt/internal/trace"
)

// MinWideWidth is the narrowest terminal that gets column layout.
const MinWideWidth = 50

const (
	indentWidth   = 8
	maxFileLength = 50
)

type Options struct {
	Scheme      highlight.Scheme
	Width       int // terminal width; 0 when unknown
	PathMode    paths.Mode
	PathOptions paths.Options
	Separator   string // between an expression and its values, "=>" by default
	MaxDepth    int
	Reporter    diag.Reporter
	Tracer      trace.Tracer
}

// Renderer holds only immutable state, so Render can run concurrently.
type Renderer struct {
	model    *syntax.Model
	hl       *highlight.Highlighter
	resolver *resolve.Resolver
	opts     Options
}

func New(model *syntax.Model, opts Options) *Renderer {
	if opts.Separator == "" {
		opts.Separator = "=>"
	}
	if opts.PathMode == "" {
		opts.PathMode = paths.ModeDisambiguated
	}
	return &Renderer{
		model: model,
		hl:    highlight.New(model, opts.Scheme),
		resolver: resolve.New(model, resolve.Options{
			MaxDepth: opts.MaxDepth,
			Reporter: opts.Reporter,
			Tracer:   opts.Tracer,
		}),
		opts: opts,
	}
}

func (r *Renderer) Options() Options { return r.opts }

func (r *Renderer) wide() bool { return r.opts.Width >= MinWideWidth }

// Render returns the complete report, ending with a newline.
func (r *Renderer) Render(c *Check) (string, error) {
	if r.opts.Scheme.Plain() {
		c = plain(c)
	}
	var sb strings.Builder
	r.writeHeader(&sb, c)
	if c.IsBinary() {
		r.writeWhere(&sb, c)
	}
	if len(c.Extra) > 0 {
		r.writeExtra(&sb, c.Extra)
	}
	sb.WriteString("\nStack trace:\n")
	if err := r.writeStack(&sb, c.Frames); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Renderer) writeHeader(sb *strings.Builder, c *Check) {
	fn := r.hl.String(c.Location.Function)
	if c.Message != "" {
		fmt.Fprintf(sb, "%s failed at %s: %s: %s\n", c.Kind.Title(), c.Location, fn, c.Message)
	} else {
		fmt.Fprintf(sb, "%s failed at %s: %s:\n", c.Kind.Title(), c.Location, fn)
	}
	args := ""
	if c.HasArgs {
		args = ", ..."
	}
	fmt.Fprintf(sb, "    %s\n", r.hl.String(c.Macro+"("+c.Expression+args+");"))
}

// width ignores escape sequences, values may arrive already styled.
func width(s string) int { return layout.VisibleWidth(s) }

// plain returns a copy of c with escape sequences removed from every
// caller supplied string, so colour-off output stays free of them.
func plain(c *Check) *Check {
	out := *c
	out.Message = highlight.Strip(c.Message)
	out.Left.Values = stripAll(c.Left.Values)
	out.Right.Values = stripAll(c.Right.Values)
	if len(c.Extra) > 0 {
		out.Extra = make([]Pair, len(c.Extra))
		for i, p := range c.Extra {
			out.Extra[i] = Pair{Key: highlight.Strip(p.Key), Value: highlight.Strip(p.Value)}
		}
	}
	return &out
}

func stripAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = highlight.Strip(v)
	}
	return out
}

// character literals print the same way as decimals, so they don't count
const extraFormats = syntax.FormatIntegerHex | syntax.FormatIntegerOctal |
	syntax.FormatIntegerBinary | syntax.FormatFloatHex

// multipleFormats: a hex, octal or binary literal operand makes the values
// worth printing even when they render the same as the expression.
func (r *Renderer) multipleFormats(c *Check, leftExpr, rightExpr string) bool {
	if c.MultipleFormats {
		return true
	}
	f := r.model.LiteralFormat(strings.TrimSpace(leftExpr)) |
		r.model.LiteralFormat(strings.TrimSpace(rightExpr))
	return f&extraFormats != 0
}

// useful reports whether printing "expr => values" tells the reader more
// than the expression itself, so "1 => 1" is skipped.
func useful(expr string, values []string, multipleFormats bool) bool {
	return multipleFormats || len(values) > 1 ||
		(expr != values[0] && syntax.TrimSuffix(expr) != values[0])
}

// padValues pads the shorter of each left/right value pair so the formats
// line up between the two where-clause rows. Last entries stay unpadded.
func padValues(left, right []string) ([]string, []string) {
	left, right = append([]string(nil), left...), append([]string(nil), right...)
	for i := range min(len(left), len(right)) {
		lw, rw := width(left[i]), width(right[i])
		which := &left
		if rw < lw {
			which = &right
		}
		if i != len(*which)-1 {
			diff := max(lw-rw, rw-lw)
			(*which)[i] += strings.Repeat(" ", diff)
		}
	}
	return left, right
}

func (r *Renderer) writeWhere(sb *strings.Builder, c *Check) {
	leftExpr, rightExpr := c.Left.Expr, c.Right.Expr
	if leftExpr == "" || rightExpr == "" {
		l, rr := r.resolver.Operands(c.Expression, c.Operator)
		if leftExpr == "" {
			leftExpr = l
		}
		if rightExpr == "" {
			rightExpr = rr
		}
	}
	lvals, rvals := padValues(c.Left.Values, c.Right.Values)
	multi := r.multipleFormats(c, leftExpr, rightExpr)
	showLeft := useful(leftExpr, lvals, multi)
	showRight := useful(rightExpr, rvals, multi)
	if !showLeft && !showRight {
		return
	}

	lw := 0
	if showLeft {
		lw = width(leftExpr)
	}
	if showRight {
		lw = max(lw, width(rightExpr))
	}
	if r.opts.Width > 0 {
		lw = max(min(lw, r.opts.Width/2-indentWidth-r.arrowWidth()), 0)
	}

	sb.WriteString("    Where:\n")
	if showLeft {
		r.writeClause(sb, leftExpr, lvals, lw)
	}
	if showRight {
		r.writeClause(sb, rightExpr, rvals, lw)
	}
}

// arrowWidth is the separator with a space on each side.
func (r *Renderer) arrowWidth() int { return width(r.opts.Separator) + 2 }

func (r *Renderer) valueBlocks(values []string) []highlight.Block {
	if len(values) == 1 {
		return r.hl.Blocks(values[0])
	}
	blocks := []highlight.Block{{Role: highlight.RoleNone, Text: " "}}
	for i, v := range values {
		if i > 0 {
			blocks = append(blocks, highlight.Block{Role: highlight.RoleNone, Text: "  "})
		}
		blocks = append(blocks, r.hl.Blocks(v)...)
	}
	return blocks
}

func (r *Renderer) writeClause(sb *strings.Builder, expr string, values []string, lw int) {
	if r.wide() {
		sb.WriteString(r.pairRow(r.hl.Blocks(expr), lw, r.valueBlocks(values)))
		return
	}
	fmt.Fprintf(sb, "%s%s%s %s ", strings.Repeat(" ", indentWidth), r.hl.String(expr),
		strings.Repeat(" ", max(lw-width(expr), 0)), r.opts.Separator)
	if len(values) == 1 {
		sb.WriteString(indent(r.hl.String(values[0]), indentWidth+lw+r.arrowWidth()))
		sb.WriteByte('\n')
		return
	}
	sb.WriteByte(' ')
	for i, v := range values {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(r.hl.String(v))
	}
	sb.WriteByte('\n')
}

// pairRow lays out "        key => value" with the value column wrapping.
func (r *Renderer) pairRow(key []highlight.Block, lw int, value []highlight.Block) string {
	sep := r.opts.Separator
	return layout.Wrap([]layout.Column{
		layout.Text(indentWidth-1, ""),
		layout.Blocks(lw, key),
		layout.Text(width(sep), sep),
		layout.Blocks(r.opts.Width-lw-indentWidth-r.arrowWidth(), value),
	}, r.opts.Scheme)
}

func (r *Renderer) writeExtra(sb *strings.Builder, extra []Pair) {
	sb.WriteString("    Extra diagnostics:\n")
	lw := 0
	for _, p := range extra {
		lw = max(lw, width(p.Key))
	}
	for _, p := range extra {
		if r.wide() {
			sb.WriteString(r.pairRow(r.hl.Blocks(p.Key), lw, r.hl.Blocks(p.Value)))
			continue
		}
		fmt.Fprintf(sb, "%s%s%s %s %s\n", strings.Repeat(" ", indentWidth), r.hl.String(p.Key),
			strings.Repeat(" ", lw-width(p.Key)), r.opts.Separator,
			indent(r.hl.String(p.Value), indentWidth+lw+r.arrowWidth()))
	}
}

// indent prefixes every line but the first with depth spaces.
func indent(s string, depth int) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", depth))
}
