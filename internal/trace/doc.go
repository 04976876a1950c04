// Package trace provides a lightweight tracing subsystem. The virtual
// machine's Run opens a "run" span; the lexer and parser emit no spans.
//
// Tracing is off by default (zero overhead via Nop). Enable it by attaching
// a Tracer to a context.Context:
//
//	ctx = trace.WithTracer(ctx, trace.NewTextTracer(os.Stderr, trace.LevelDebug))
//	t := trace.FromContext(ctx)
//	span := trace.Begin(t, trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
