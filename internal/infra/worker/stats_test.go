package worker

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/observability/metrics"
)

/* ───────── スタブ実装 ───────── */

type stubCounter struct {
	n     int64
	err   error
	calls atomic.Int32
}

func (s *stubCounter) Count(ctx context.Context) (int64, error) {
	s.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("count called without a deadline")
	}
	return s.n, s.err
}

type stubPool struct{ stats sql.DBStats }

func (p stubPool) Stats() sql.DBStats { return p.stats }

/* ───────── Run ───────── */

func TestStatsJob_Run(t *testing.T) {
	job := &StatsJob{
		Articles: &stubCounter{n: 42},
		Pool:     stubPool{stats: sql.DBStats{InUse: 3, Idle: 7}},
	}

	require.NoError(t, job.Run(context.Background()))

	assert.Equal(t, float64(42), testutil.ToFloat64(metrics.ArticlesTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.DBConnectionsActive))
	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.DBConnectionsIdle))
}

func TestStatsJob_RunCountError(t *testing.T) {
	metrics.UpdateArticlesTotal(5)
	failures := metrics.WorkerJobRunsTotal.WithLabelValues("failure")
	before := testutil.ToFloat64(failures)

	job := &StatsJob{
		Articles: &stubCounter{err: errors.New("connection refused")},
		Pool:     stubPool{stats: sql.DBStats{InUse: 1}},
	}

	err := job.Run(context.Background())

	assert.ErrorContains(t, err, "count articles")
	assert.Equal(t, float64(5), testutil.ToFloat64(metrics.ArticlesTotal), "gauge keeps the last good value")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DBConnectionsActive), "pool stats still refreshed")
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestStatsJob_RunWithoutDependencies(t *testing.T) {
	assert.NoError(t, (&StatsJob{}).Run(context.Background()))
}

/* ───────── Start ───────── */

func TestStart_RunsImmediatelyAndStops(t *testing.T) {
	counter := &stubCounter{n: 1}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Start(ctx, "@every 1h", &StatsJob{Articles: counter}) }()

	require.Eventually(t, func() bool { return counter.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStart_InvalidSchedule(t *testing.T) {
	err := Start(context.Background(), "not a schedule", &StatsJob{})
	assert.ErrorContains(t, err, "schedule stats job")
}
