// Package retry re-runs database calls that failed at the connection level,
// waiting a capped exponential delay between attempts. It is used while the
// database is still coming up; SQL errors are never retried.
package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"syscall"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ErrExhausted is wrapped into the returned error when every attempt failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Config controls how many times an operation runs and how long to wait in between.
type Config struct {
	// Attempts counts the first call. Values below 1 mean a single call.
	Attempts int
	// BaseDelay is the wait after the first failure.
	BaseDelay time.Duration
	// MaxDelay caps the wait before jitter is added.
	MaxDelay time.Duration
	// Multiplier grows the wait after each failure.
	Multiplier float64
	// Jitter adds up to this fraction of the wait at random (0 to 1).
	Jitter float64
}

// DBStartupConfig covers the boot-time ping, when a database container may
// need a few seconds before it accepts connections.
func DBStartupConfig() Config {
	return Config{
		Attempts:   5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2,
		Jitter:     0.1,
	}
}

// Delay returns the wait that follows failed attempt n (1-based).
func (c Config) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	mult := c.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := float64(c.BaseDelay) * math.Pow(mult, float64(n-1))
	if c.MaxDelay > 0 && d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	if j := math.Min(c.Jitter, 1); j > 0 {
		d += rand.Float64() * d * j // #nosec G404
	}
	return time.Duration(d)
}

// Do calls fn until it succeeds, returns a non-retryable error, or runs out of
// attempts. op names the operation in logs and in the exhausted error.
func Do(ctx context.Context, cfg Config, op string, fn func(context.Context) error) error {
	log := slog.With(slog.String("op", op))

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		switch {
		case err == nil:
			if attempt > 1 {
				log.Info("succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		case !Retryable(err):
			return err
		case attempt >= cfg.Attempts:
			return fmt.Errorf("%s: %w after %d attempts: %w", op, ErrExhausted, attempt, err)
		}

		wait := cfg.Delay(attempt)
		log.Warn("connection failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("attempts", cfg.Attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%s: %w", op, ctx.Err())
		case <-t.C:
		}
	}
}

// transient lists the errors that mean the connection, not the statement, failed.
var transient = []error{
	driver.ErrBadConn,
	mysql.ErrInvalidConn,
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ETIMEDOUT,
	syscall.ENETUNREACH,
}

// Retryable reports whether err is a connection-level failure.
// Context cancellation is never retryable.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	for _, t := range transient {
		if errors.Is(err, t) {
			return true
		}
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
