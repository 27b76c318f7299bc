package slo

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// Snapshot is the result of one sampling window.
type Snapshot struct {
	Requests     float64
	Errors       float64
	Availability float64
	ErrorRate    float64
	LatencyP95   float64
	LatencyP99   float64
}

// Tracker turns cumulative request counters and latency histograms into
// per-window SLO gauges. requests must carry a "status" label; durations
// is the matching latency histogram.
type Tracker struct {
	requests  prometheus.Collector
	durations prometheus.Collector

	mu          sync.Mutex
	prevTotal   float64
	prevErrors  float64
	prevCount   uint64
	prevBuckets map[float64]uint64
}

// NewTracker creates a tracker over the given collectors.
func NewTracker(requests, durations prometheus.Collector) *Tracker {
	return &Tracker{
		requests:    requests,
		durations:   durations,
		prevBuckets: make(map[float64]uint64),
	}
}

// Sample computes indicators for the requests observed since the previous call
// and publishes them. A window without requests reports full availability and
// leaves the latency gauges untouched.
func (t *Tracker) Sample() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	total, errs := sumRequests(collect(t.requests))
	count, buckets := sumBuckets(collect(t.durations))

	snap := Snapshot{
		Requests:     total - t.prevTotal,
		Errors:       errs - t.prevErrors,
		Availability: 1,
	}

	window := make(map[float64]uint64, len(buckets))
	for bound, c := range buckets {
		window[bound] = c - t.prevBuckets[bound]
	}
	windowCount := count - t.prevCount

	t.prevTotal, t.prevErrors = total, errs
	t.prevCount, t.prevBuckets = count, buckets

	if snap.Requests > 0 {
		snap.ErrorRate = snap.Errors / snap.Requests
		snap.Availability = 1 - snap.ErrorRate
	}
	SLOAvailability.Set(snap.Availability)
	SLOErrorRate.Set(snap.ErrorRate)

	if windowCount > 0 {
		snap.LatencyP95 = quantile(0.95, windowCount, window)
		snap.LatencyP99 = quantile(0.99, windowCount, window)
		SLOLatencyP95.Set(snap.LatencyP95)
		SLOLatencyP99.Set(snap.LatencyP99)
	}
	return snap
}

func collect(c prometheus.Collector) []*io_prometheus_client.Metric {
	ch := make(chan prometheus.Metric, 32)
	go func() {
		c.Collect(ch)
		close(ch)
	}()

	var out []*io_prometheus_client.Metric
	for m := range ch {
		pb := &io_prometheus_client.Metric{}
		if err := m.Write(pb); err == nil {
			out = append(out, pb)
		}
	}
	return out
}

func sumRequests(ms []*io_prometheus_client.Metric) (total, errs float64) {
	for _, m := range ms {
		v := m.GetCounter().GetValue()
		total += v
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "status" && strings.HasPrefix(lp.GetValue(), "5") {
				errs += v
			}
		}
	}
	return total, errs
}

func sumBuckets(ms []*io_prometheus_client.Metric) (uint64, map[float64]uint64) {
	var count uint64
	buckets := make(map[float64]uint64)
	for _, m := range ms {
		h := m.GetHistogram()
		count += h.GetSampleCount()
		for _, b := range h.GetBucket() {
			buckets[b.GetUpperBound()] += b.GetCumulativeCount()
		}
	}
	return count, buckets
}

// quantile estimates q from cumulative bucket counts by linear interpolation
// inside the bucket holding the rank. Ranks past the last finite bucket
// resolve to that bucket's upper bound.
func quantile(q float64, count uint64, buckets map[float64]uint64) float64 {
	bounds := make([]float64, 0, len(buckets))
	for b := range buckets {
		if !math.IsInf(b, 1) {
			bounds = append(bounds, b)
		}
	}
	if len(bounds) == 0 {
		return 0
	}
	sort.Float64s(bounds)

	rank := q * float64(count)
	lower, below := 0.0, uint64(0)
	for _, upper := range bounds {
		cum := buckets[upper]
		if float64(cum) >= rank {
			inBucket := cum - below
			if inBucket == 0 {
				return upper
			}
			return lower + (upper-lower)*(rank-float64(below))/float64(inBucket)
		}
		lower, below = upper, cum
	}
	return bounds[len(bounds)-1]
}
