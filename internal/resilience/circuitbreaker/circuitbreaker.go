// Package circuitbreaker stops sending queries to a database that keeps
// failing. It is built on github.com/sony/gobreaker; rejected calls surface
// as repository.ErrUnavailable so handlers can answer 503.
package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"article-api/internal/observability/metrics"
	"article-api/internal/repository"
)

// Config describes when a breaker opens and how it recovers.
type Config struct {
	Name string

	// Probes is how many calls may pass while the breaker is half-open.
	Probes uint32
	// Window resets the closed-state counters. Zero keeps them until a state change.
	Window time.Duration
	// Cooldown is how long the breaker stays open before probing.
	Cooldown time.Duration
	// TripRatio is the failure ratio that opens the breaker once MinRequests is reached.
	TripRatio   float64
	MinRequests uint32
}

// DBConfig opens after five straight failures and probes again after 30s.
func DBConfig() Config {
	return Config{
		Name:        "database",
		Probes:      3,
		Window:      time.Minute,
		Cooldown:    30 * time.Second,
		TripRatio:   1.0,
		MinRequests: 5,
	}
}

func (c Config) readyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < c.MinRequests {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= c.TripRatio
}

// CircuitBreaker guards calls to one dependency.
type CircuitBreaker struct {
	gb *gobreaker.CircuitBreaker
}

// New builds a breaker and publishes its initial closed state.
func New(cfg Config) *CircuitBreaker {
	gb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.Probes,
		Interval:    cfg.Window,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: cfg.readyToTrip,
		// A client hanging up says nothing about database health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.SetCircuitBreakerState(name, stateValue(to))
		},
	})
	metrics.SetCircuitBreakerState(cfg.Name, stateValue(gobreaker.StateClosed))
	return &CircuitBreaker{gb: gb}
}

func (b *CircuitBreaker) Name() string { return b.gb.Name() }

// State is "closed", "half-open" or "open".
func (b *CircuitBreaker) State() string { return b.gb.State().String() }

// Call runs fn through b. Errors from fn pass through unchanged; rejections by
// the breaker wrap repository.ErrUnavailable.
func Call[T any](b *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := b.gb.Execute(func() (interface{}, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		var zero T
		return zero, b.reject(err)
	}
	return res.(T), nil
}

// Run is Call for operations without a result.
func Run(b *CircuitBreaker, fn func() error) error {
	_, err := Call(b, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func (b *CircuitBreaker) reject(err error) error {
	if IsRejection(err) {
		return fmt.Errorf("%s: %w: %w", b.Name(), repository.ErrUnavailable, err)
	}
	return err
}

// IsRejection reports whether err came from the breaker rather than the guarded call.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
