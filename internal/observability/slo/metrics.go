// Package slo publishes service level indicators derived from the HTTP metrics.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"article-api/internal/observability/metrics"
)

// Objectives of the article API.
const (
	// AvailabilitySLO is the target percentage of non-5xx responses.
	AvailabilitySLO = 99.9
	// LatencyP95SLO is the p95 latency target in seconds.
	LatencyP95SLO = 0.200
	// LatencyP99SLO is the p99 latency target in seconds.
	LatencyP99SLO = 0.500
	// ErrorRateSLO is the maximum ratio of 5xx responses.
	ErrorRateSLO = 0.001
)

// Gauges refreshed by Tracker.Sample over the window since the previous sample.
var (
	SLOAvailability = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metrics.Namespace, Subsystem: "slo", Name: "availability_ratio",
		Help: "Availability ratio (0-1) over the last sampling window, target: 0.999",
	})

	SLOLatencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metrics.Namespace, Subsystem: "slo", Name: "latency_p95_seconds",
		Help: "Estimated p95 latency over the last sampling window, target: 0.200",
	})

	SLOLatencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metrics.Namespace, Subsystem: "slo", Name: "latency_p99_seconds",
		Help: "Estimated p99 latency over the last sampling window, target: 0.500",
	})

	SLOErrorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metrics.Namespace, Subsystem: "slo", Name: "error_rate_ratio",
		Help: "5xx ratio (0-1) over the last sampling window, target: 0.001",
	})
)
