// Package trace records what assertfmt did while rendering a batch of checks.
//
// Events are spans (begin/end pairs) and points. Each carries a Scope, and the
// tracer Level decides which scopes are kept:
//
//   - LevelPhase: command and stage boundaries (load, render, write)
//   - LevelDetail: plus one span per rendered check record
//   - LevelDebug: plus resolver branch events
//
// Tracers:
//
//   - Nop: disabled tracing
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fan-out
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "render", 0)
//	defer span.End("")
package trace
