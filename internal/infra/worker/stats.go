// Package worker runs background jobs next to the HTTP server.
package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"article-api/internal/observability/metrics"
	"article-api/internal/observability/slo"
)

// DefaultJobTimeout bounds a single stats run.
const DefaultJobTimeout = 10 * time.Second

// ArticleCounter is the part of the repository the stats job needs.
type ArticleCounter interface {
	Count(ctx context.Context) (int64, error)
}

// PoolStater reports connection pool statistics; *sql.DB satisfies it.
type PoolStater interface {
	Stats() sql.DBStats
}

// StatsJob refreshes the gauges that cannot be updated per request:
// the article row count, pool usage, and SLO indicators.
type StatsJob struct {
	Articles ArticleCounter
	Pool     PoolStater
	SLO      *slo.Tracker // optional
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Run performs one sampling pass. Pool and SLO gauges are refreshed even
// when the row count fails.
func (j *StatsJob) Run(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { metrics.RecordWorkerJob(start, err) }()

	if j.Pool != nil {
		metrics.UpdateDBConnectionStats(j.Pool.Stats())
	}
	if j.SLO != nil {
		snap := j.SLO.Sample()
		j.logger().Debug("slo sampled",
			slog.Float64("requests", snap.Requests),
			slog.Float64("availability", snap.Availability),
			slog.Float64("latency_p95", snap.LatencyP95))
	}

	if j.Articles == nil {
		return nil
	}

	timeout := j.Timeout
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	n, err := j.Articles.Count(ctx)
	if err != nil {
		return fmt.Errorf("count articles: %w", err)
	}
	metrics.UpdateArticlesTotal(n)
	return nil
}

func (j *StatsJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}

// Start schedules job on a cron expression and blocks until ctx is canceled.
// One run happens immediately so gauges are populated before the first tick.
// Overlapping runs are skipped.
func Start(ctx context.Context, schedule string, job *StatsJob) error {
	logger := job.logger()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(schedule, func() { runOnce(ctx, job, logger) })
	if err != nil {
		return fmt.Errorf("schedule stats job %q: %w", schedule, err)
	}

	runOnce(ctx, job, logger)
	c.Start()
	logger.Info("stats worker started", slog.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	logger.Info("stats worker stopped")
	return nil
}

func runOnce(ctx context.Context, job *StatsJob, logger *slog.Logger) {
	if ctx.Err() != nil {
		return
	}
	if err := job.Run(ctx); err != nil {
		logger.Warn("stats job failed", slog.Any("error", err))
	}
}
