package metrics

import (
	"database/sql"
	"time"
)

// Operation results used as the "result" label of ArticleOperationsTotal.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RecordArticleOperation increments the counter for one article use case call.
func RecordArticleOperation(operation, result string) {
	ArticleOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateArticlesTotal updates the total count of articles in the database.
// This gauge is refreshed periodically by the stats worker.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// UpdateDBConnectionStats publishes a snapshot of the connection pool.
func UpdateDBConnectionStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
	DBConnectionsOpen.Set(float64(stats.OpenConnections))
	DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
	DBWaitCount.Set(float64(stats.WaitCount))
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordWorkerJob records one stats job run that started at start.
func RecordWorkerJob(start time.Time, err error) {
	WorkerJobDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		WorkerJobRunsTotal.WithLabelValues("failure").Inc()
		return
	}
	WorkerJobRunsTotal.WithLabelValues("success").Inc()
	WorkerJobLastSuccess.Set(float64(time.Now().Unix()))
}
