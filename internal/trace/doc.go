// Package trace records what the jsfront pipeline is doing: which files are
// loaded, lexed and parsed, and how long each phase takes.
//
// Enable it from the CLI:
//
//	jsfront check --trace=- --trace-level=file src/
//
// Tracers:
//
//   - Nop: disabled tracing, zero cost
//   - StreamTracer: writes every event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels map to scopes: "phase" shows driver and pass spans, "file" adds
// one span per source file, "debug" shows everything.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopePass, "parse")
//	defer span.End("")
package trace
