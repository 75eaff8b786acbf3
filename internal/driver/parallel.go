package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"assertfmt/internal/report"
	"assertfmt/internal/trace"
)

// RenderOptions tunes RenderAll.
type RenderOptions struct {
	Jobs  int          // <= 0 means GOMAXPROCS
	Cache *RenderCache // может быть nil
}

// RenderResult is the report for one input record.
type RenderResult struct {
	Index  int
	Output string
	Cached bool
}

// RenderAll renders checks in parallel and returns results in input order.
// The first error cancels the remaining work.
func RenderAll(ctx context.Context, checks []report.Check, r *report.Renderer, opts RenderOptions) ([]RenderResult, error) {
	if len(checks) == 0 {
		return nil, nil
	}
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	stage := trace.Begin(tracer, trace.ScopeStage, "render", parent)
	defer func() { stage.End(strconv.Itoa(len(checks)) + " checks") }()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]RenderResult, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(checks)))

	for i := range checks {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			span := trace.Begin(tracer, trace.ScopeRecord, "record", stage.ID())
			out, cached, err := renderOne(&checks[i], r, opts.Cache)
			if err != nil {
				span.End("error")
				return fmt.Errorf("check #%d (%s): %w", i+1, checks[i].Location, err)
			}
			span.WithExtra("cached", strconv.FormatBool(cached)).End("")

			results[i] = RenderResult{Index: i, Output: out, Cached: cached}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderOne(c *report.Check, r *report.Renderer, cache *RenderCache) (string, bool, error) {
	if cache == nil {
		out, err := r.Render(c)
		return out, false, err
	}
	key, err := Key(c, r.Options())
	if err != nil {
		return "", false, err
	}
	if out, ok, err := cache.Get(key); err == nil && ok {
		return out, true, nil
	}
	out, err := r.Render(c)
	if err != nil {
		return "", false, err
	}
	if err := cache.Put(key, out); err != nil {
		return "", false, fmt.Errorf("render cache: %w", err)
	}
	return out, false, nil
}
