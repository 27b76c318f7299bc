// Package observability groups the logging, metrics, tracing, and SLO
// subpackages used by the article API.
//
// Subpackages:
//   - logging: root slog logger with optional rotating file output
//   - metrics: Prometheus collectors for HTTP, article, and database activity
//   - slo: availability, error rate, and latency indicators sampled from metrics
//   - tracing: OpenTelemetry provider setup and HTTP server spans
package observability
