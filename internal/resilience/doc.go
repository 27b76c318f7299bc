// Package resilience provides fault tolerance patterns for database access.
//
// The package supports:
//   - Circuit breakers that fail fast while the database is unhealthy
//   - Retry logic with exponential backoff and jitter
//
// Usage Example:
//
//	repo := circuitbreaker.NewArticleRepo(mysql.NewArticleRepo(db), circuitbreaker.DBConfig())
//
//	err := retry.Do(ctx, retry.DBStartupConfig(), "ping", db.PingContext)
package resilience
