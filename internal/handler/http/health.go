// Package http provides the HTTP plumbing of the article service:
// middleware, Prometheus instrumentation, rate limiting, and health endpoints.
// Article handlers live in the article subpackage.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"article-api/internal/handler/http/respond"
)

// Health is the outcome of a check, ordered from best to worst.
type Health string

const (
	Healthy   Health = "healthy"
	Degraded  Health = "degraded"
	Unhealthy Health = "unhealthy"
)

var healthRank = map[Health]int{Healthy: 0, Degraded: 1, Unhealthy: 2}

func (h Health) worse(than Health) bool { return healthRank[h] > healthRank[than] }

// CheckStatus is the result of one named check.
type CheckStatus struct {
	Status  Health         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Checker is a single probe reported by /health.
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckStatus
}

// HealthResponse is the /health body. Status is the worst check result.
type HealthResponse struct {
	Status    Health                 `json:"status"`
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// HealthHandler runs every check and answers 503 only when one is unhealthy.
// Degraded checks keep the service in rotation.
type HealthHandler struct {
	Version string
	Checks  []Checker
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    Healthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckStatus, len(h.Checks)),
		Version:   h.Version,
	}
	for _, c := range h.Checks {
		st := c.Check(ctx)
		resp.Checks[c.Name()] = st
		if st.Status.worse(resp.Status) {
			resp.Status = st.Status
		}
	}

	code := http.StatusOK
	if resp.Status == Unhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

// DBCheck pings the pool and reports its usage. A bounded pool at or above
// SaturationPercent in use, or an unbounded pool, is degraded.
type DBCheck struct {
	DB                *sql.DB
	SaturationPercent float64 // default 80
}

func (DBCheck) Name() string { return "database" }

func (c DBCheck) Check(ctx context.Context) CheckStatus {
	if c.DB == nil {
		return CheckStatus{Status: Unhealthy, Message: "not configured"}
	}
	if err := c.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: Unhealthy, Message: respond.SanitizeError(err)}
	}

	s := c.DB.Stats()
	st := CheckStatus{Status: Healthy, Details: map[string]any{
		"max_open_connections": s.MaxOpenConnections,
		"open_connections":     s.OpenConnections,
		"in_use":               s.InUse,
		"idle":                 s.Idle,
		"wait_count":           s.WaitCount,
		"wait_duration_ms":     s.WaitDuration.Milliseconds(),
	}}
	if s.MaxOpenConnections == 0 {
		st.Status, st.Message = Degraded, "connection pool is unbounded"
		return st
	}

	limit := c.SaturationPercent
	if limit <= 0 {
		limit = 80
	}
	used := 100 * float64(s.InUse) / float64(s.MaxOpenConnections)
	st.Details["utilization_percent"] = used
	if used >= limit {
		st.Status, st.Message = Degraded, "connection pool nearly exhausted"
	}
	return st
}

// BreakerStatus is the part of a circuit breaker the health check reports on.
type BreakerStatus interface {
	Name() string
	// State is "closed", "half-open" or "open".
	State() string
}

// BreakerCheck reports a breaker that is not closed as degraded; the database
// check decides whether the service is down.
type BreakerCheck struct {
	Breaker BreakerStatus
}

func (BreakerCheck) Name() string { return "circuit_breaker" }

func (c BreakerCheck) Check(context.Context) CheckStatus {
	state := c.Breaker.State()
	st := CheckStatus{Status: Healthy, Details: map[string]any{"name": c.Breaker.Name(), "state": state}}
	if state != "closed" {
		st.Status, st.Message = Degraded, "circuit "+state
	}
	return st
}

// ReadyHandler answers readiness probes: 200 once the database answers a ping.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if st := (DBCheck{DB: h.DB}).Check(ctx); st.Status == Unhealthy {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers liveness probes with 200 while the process serves HTTP.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
