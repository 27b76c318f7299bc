package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric this service exports.
const Namespace = "article_api"

var sizeBuckets = prometheus.ExponentialBuckets(100, 10, 8)

// HTTP
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace, Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests by method, normalized path and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration spans 5ms to 10s so p95 and p99 stay measurable.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace, Subsystem: "http", Name: "request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	HTTPRequestSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace, Subsystem: "http", Name: "request_size_bytes",
		Help: "Declared request body size.", Buckets: sizeBuckets,
	}, []string{"method", "path"})

	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace, Subsystem: "http", Name: "response_size_bytes",
		Help: "Response body bytes written.", Buckets: sizeBuckets,
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace, Subsystem: "http", Name: "requests_in_flight",
		Help: "Requests currently being served.",
	})

	HTTPRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace, Subsystem: "http", Name: "rate_limited_total",
		Help: "Requests rejected with 429 by the per-IP limiter.",
	})
)

// Articles
var (
	// ArticlesTotal is refreshed by the stats worker.
	ArticlesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace, Name: "articles_total",
		Help: "Rows in the articles table.",
	})

	// ArticleOperationsTotal result is one of success, not_found, error.
	ArticleOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace, Name: "article_operations_total",
		Help: "Article use case calls by operation and result.",
	}, []string{"operation", "result"})
)

// Database
var (
	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace, Subsystem: "db", Name: "query_duration_seconds",
		Help:    "Repository statement latency by operation.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation"})

	DBConnectionsActive = poolGauge("connections_in_use", "Pool connections currently in use.")
	DBConnectionsIdle   = poolGauge("connections_idle", "Idle pool connections.")
	DBConnectionsOpen   = poolGauge("connections_open", "Established pool connections.")
	DBConnectionsMax    = poolGauge("connections_max_open", "Configured pool limit, 0 when unbounded.")
	DBWaitCount         = poolGauge("wait_count", "Cumulative waits for a free connection.")

	// CircuitBreakerState is 0 (closed), 1 (half-open) or 2 (open).
	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace, Name: "circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})
)

// Stats worker
var (
	WorkerJobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace, Subsystem: "worker", Name: "job_runs_total",
		Help: "Stats job runs by status (success, failure).",
	}, []string{"status"})

	WorkerJobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace, Subsystem: "worker", Name: "job_duration_seconds",
		Help:    "Stats job run time.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	WorkerJobLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace, Subsystem: "worker", Name: "job_last_success_timestamp_seconds",
		Help: "Unix time of the last successful stats job run.",
	})
)

func poolGauge(name, help string) prometheus.Gauge {
	return promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace, Subsystem: "db", Name: name, Help: help,
	})
}

// RecordHTTPRequest records one served request. Sizes of zero are not observed.
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// ObserveDBQuery records the time elapsed since start under operation.
//
//	defer metrics.ObserveDBQuery("get", time.Now())
func ObserveDBQuery(operation string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
