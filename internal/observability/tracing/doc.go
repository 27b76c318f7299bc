// Package tracing wires OpenTelemetry into the HTTP stack.
//
// Init installs the SDK tracer provider at startup; Middleware opens one
// server span per request so the request log line can carry the trace ID.
//
//	shutdown := tracing.Init(cfg.TracingEnabled, version)
//	defer shutdown(context.Background())
//	handler := tracing.Middleware(mux)
package tracing
