package resolve

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"assertfmt/internal/diag"
	"assertfmt/internal/lexer"
	"assertfmt/internal/source"
	"assertfmt/internal/syntax"
	"assertfmt/internal/token"
	"assertfmt/internal/trace"
)

// Operands shown when the split cannot be decided.
const (
	SentinelLeft  = "left"
	SentinelRight = "right"
)

// DefaultMaxDepth bounds nested template forks.
const DefaultMaxDepth = 10

type Options struct {
	MaxDepth int           // <= 0 means DefaultMaxDepth
	Reporter diag.Reporter // may be nil
	Tracer   trace.Tracer  // may be nil
}

// Split is a successful decomposition. Index is the token index of the
// operator in the ">>"-decomposed token stream.
type Split struct {
	Left  string
	Right string
	Index int
}

// Resolver is safe for concurrent use; every call owns its walk state.
type Resolver struct {
	model *syntax.Model
	opts  Options
}

func New(model *syntax.Model, opts Options) *Resolver {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	return &Resolver{model: model, opts: opts}
}

// Operands returns the operand texts, or SentinelLeft/SentinelRight when the
// expression cannot be split unambiguously.
func (r *Resolver) Operands(expr, target string) (left, right string) {
	split, err := r.Decompose(expr, target)
	if err != nil {
		return SentinelLeft, SentinelRight
	}
	return split.Left, split.Right
}

// Decompose splits expr at its top-level target operator.
func (r *Resolver) Decompose(expr, target string) (Split, error) {
	target = r.model.NormalizeOp(target)
	whole := wholeSpan(expr)

	tokens, err := lexer.Tokenize(expr, lexer.Options{DecomposeShr: true})
	if err != nil {
		r.report(diag.ResolveIllFormed, diag.SevError, whole, err.Error())
		return Split{}, fmt.Errorf("%w: %w", ErrIllFormed, err)
	}

	w := &walker{
		model:      r.model,
		tokens:     tokens,
		target:     target,
		maxDepth:   r.opts.MaxDepth,
		tracer:     r.opts.Tracer,
		candidates: make(map[int]struct{}),
	}
	ok := w.parse(0, 0, 0, -1, 0)

	switch {
	case w.illFormed != "":
		r.report(diag.ResolveIllFormed, diag.SevError, whole, w.illFormed)
		return Split{}, fmt.Errorf("%w: %s", ErrIllFormed, w.illFormed)
	case !ok:
		msg := fmt.Sprintf("more than %d nested template forks", r.opts.MaxDepth)
		r.report(diag.ResolveDepthExceeded, diag.SevInfo, whole, msg)
		trace.Point(r.opts.Tracer, trace.ScopeBranch, "resolve:"+target, "depth exceeded")
		return Split{}, fmt.Errorf("%w: %s", ErrDepthExceeded, msg)
	case len(w.candidates) == 0:
		r.report(diag.ResolveNoCandidate, diag.SevInfo, whole, fmt.Sprintf("%q is not a top-level operator", target))
		return Split{}, fmt.Errorf("%w: %q", ErrNoCandidate, target)
	}

	if len(w.candidates) > 1 {
		// деревья, согласные по индексу, уже слиты множеством
		b := diag.NewReportBuilder(r.opts.Reporter, diag.SevInfo, diag.ResolveAmbiguous, whole,
			fmt.Sprintf("%d parse trees split %q differently", len(w.candidates), target))
		for _, m := range slices.Sorted(maps.Keys(w.candidates)) {
			b.WithNote(tokens[m].Span, "candidate split")
		}
		b.Emit()
		return Split{}, fmt.Errorf("%w: %d candidates for %q", ErrAmbiguous, len(w.candidates), target)
	}
	for m := range w.candidates {
		return w.split(m), nil
	}
	return Split{}, ErrNoCandidate
}

func wholeSpan(expr string) source.Span {
	end, err := safecast.Conv[uint32](len(expr))
	if err != nil {
		return source.Span{}
	}
	return source.Span{End: end}
}

// trim strips the ASCII whitespace the lexer groups into Whitespace tokens.
func trim(s string) string {
	return strings.Trim(s, " \t\n\r\f\v")
}

func (r *Resolver) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if r.opts.Reporter != nil {
		r.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

type parseState uint8

const (
	expectingTerm parseState = iota
	expectingOperator
)

// walker holds the immutable token slice and the shared candidate set of
// one Decompose call. Branch-local state lives on the Go stack.
type walker struct {
	model      *syntax.Model
	tokens     []token.Token
	target     string
	maxDepth   int
	tracer     trace.Tracer
	candidates map[int]struct{}
	illFormed  string
}

// parse explores the parse trees starting at token i. It returns false when
// the whole traversal must be abandoned (depth bound or ill-formed input).
func (w *walker) parse(i, lowest, templateDepth, middle, depth int) bool {
	if depth > w.maxDepth {
		return false
	}
	if depth > 0 {
		trace.Point(w.tracer, trace.ScopeBranch, "fork", "template at "+strconv.Itoa(i-1))
	}

	state := expectingTerm
	for ; i < len(w.tokens); i++ {
		tok := w.tokens[i]
		switch tok.Kind {
		case token.Punctuation:
			switch {
			case w.model.IsOperator(tok.Text):
				if state == expectingTerm {
					// унарный
					continue
				}
				prev := w.lastNonWhitespace(i)
				if tok.Text == "<" && prev.Kind == token.Identifier {
					// ветка 1: открытие списка шаблонных аргументов
					if !w.parse(i+1, lowest, templateDepth+1, middle, depth+1) {
						return false
					}
					// ветка 2: бинарный '<', идём дальше
				} else if tok.Text == "<" && w.model.NormalizeBrace(prev.Text) == "]" {
					// параметры обобщённой лямбды: []<typename T>(T x) {...}
					end, empty, ok := w.skipGroup(i, "<", ">")
					if !ok || empty {
						w.illFormed = "bad generic lambda parameter list"
						return false
					}
					i = end
					state = expectingOperator
					continue
				}
				if templateDepth > 0 && tok.Text == ">" {
					// в списке аргументов '>' всегда закрывает
					templateDepth--
					state = expectingOperator
					continue
				}
				if templateDepth == 0 {
					op := w.model.NormalizeOp(w.realOp(i))
					if p, known := w.model.Precedence(op); known &&
						(p < lowest || (p == lowest && !syntax.IsRightAssocTier(p))) {
						middle = i
						lowest = p
					}
					if op == ">>" {
						i++
					}
				}
				state = expectingTerm
			case w.isOpenBrace(tok.Text):
				closer, _ := w.model.ClosingBrace(tok.Text)
				end, empty, ok := w.skipGroup(i, tok.Text, closer)
				if !ok {
					w.illFormed = fmt.Sprintf("unbalanced %q at %s", tok.Text, tok.Span)
					return false
				}
				i = end
				// пустые () и {} на месте терма: дерево не годится
				if state == expectingTerm && empty && w.model.NormalizeBrace(tok.Text) != "[" {
					return true
				}
				state = expectingOperator
			default:
				w.illFormed = fmt.Sprintf("unexpected %q at %s", tok.Text, tok.Span)
				return false
			}
		case token.Whitespace, token.Unknown:
			// неизвестный токен не является термом
		default:
			if tok.IsTerm() {
				state = expectingOperator
			}
		}
	}

	if middle != -1 && templateDepth == 0 && state == expectingOperator &&
		w.model.NormalizeOp(w.realOp(middle)) == w.target {
		w.candidates[middle] = struct{}{}
	}
	return true
}

func (w *walker) isOpenBrace(p string) bool {
	_, ok := w.model.ClosingBrace(p)
	return ok
}

// skipGroup finds the token closing the group opened at i. Digraph spellings
// match their plain brackets. empty reports that only whitespace was inside.
func (w *walker) skipGroup(i int, open, closer string) (end int, empty, ok bool) {
	open, closer = w.model.NormalizeBrace(open), w.model.NormalizeBrace(closer)
	empty = true
	count := 0
	for i++; i < len(w.tokens); i++ {
		switch text := w.model.NormalizeBrace(w.tokens[i].Text); {
		case text == open:
			count++
		case text == closer:
			if count == 0 {
				return i, empty, true
			}
			count--
		case !w.tokens[i].IsWhitespace():
			empty = false
		}
	}
	return len(w.tokens), empty, false
}

// lastNonWhitespace returns the closest non-whitespace token before i, or a
// zero whitespace token.
func (w *walker) lastNonWhitespace(i int) token.Token {
	for i--; i >= 0; i-- {
		if !w.tokens[i].IsWhitespace() {
			return w.tokens[i]
		}
	}
	return token.Token{Kind: token.Whitespace}
}

// realOp re-joins a ">>" that the lexer split into two ">".
func (w *walker) realOp(i int) string {
	if w.tokens[i].Text == ">" && i+1 < len(w.tokens) && w.tokens[i+1].Text == ">" {
		return ">>"
	}
	return w.tokens[i].Text
}

func (w *walker) split(m int) Split {
	rightStart := m + 1
	if w.target == ">>" {
		rightStart++
	}
	return Split{
		Left:  trim(lexer.Join(w.tokens[:m])),
		Right: trim(lexer.Join(w.tokens[min(rightStart, len(w.tokens)):])),
		Index: m,
	}
}
