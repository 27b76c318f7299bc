// Package metrics holds every Prometheus collector the service exports, all
// registered on the default registry under the article_api namespace and
// served at /metrics.
//
// Collectors are grouped by concern: HTTP traffic, article operations and row
// count, database statements and pool state, circuit breakers, and the stats
// worker. Callers record through the helper functions where one exists:
//
//	defer metrics.ObserveDBQuery("get", time.Now())
package metrics
