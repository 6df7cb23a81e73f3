// Package resilience provides fault-tolerance patterns:
// retry with exponential backoff, circuit breaker, and bulkhead.
// The bulkhead also serialises single-flight operations such as a
// donation submission.
package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Waiter pauses between attempts. clock.Sleep and clock.Instant satisfy it.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Config holds resilience parameters.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	// Waiter defaults to a real timer.
	Waiter Waiter
}

// Backoff returns the base delay before retry number attempt (0-based),
// without jitter.
func (c Config) Backoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * c.InitialBackoff
}

// RetryWithBackoff executes fn with exponential backoff + jitter.
// It respects context cancellation.
func RetryWithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < cfg.MaxRetries {
			backoff := cfg.Backoff(attempt)
			wait := backoff
			if backoff > 1 {
				wait += time.Duration(rand.Int63n(int64(backoff / 2)))
			}
			if err := cfg.wait(ctx, wait); err != nil {
				return err
			}
		}
	}
	return lastErr
}

func (c Config) wait(ctx context.Context, d time.Duration) error {
	if c.Waiter != nil {
		return c.Waiter.Wait(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewCircuitBreaker creates a breaker that opens once at least 5 requests
// in a 30s window fail at a ratio of 60% or more. Context errors do not
// count as failures. State changes are logged and exported when metrics
// is non-nil.
func NewCircuitBreaker(name string, logger *zap.Logger, metrics *observability.Metrics) *gobreaker.CircuitBreaker {
	if metrics != nil {
		metrics.SetBreakerState(name, int(gobreaker.StateClosed))
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: IsBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			}
			if metrics != nil {
				metrics.SetBreakerState(name, int(to))
			}
		},
	})
}

// IsBreakerSuccess reports whether err leaves the breaker's failure count
// alone: nil and the caller's own cancellation or deadline.
func IsBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Bulkhead limits concurrent access to a resource.
type Bulkhead struct {
	sem chan struct{}
}

// NewBulkhead creates a bulkhead with the given max concurrency.
func NewBulkhead(maxConcurrency int) *Bulkhead {
	return &Bulkhead{sem: make(chan struct{}, maxConcurrency)}
}

// Acquire blocks until a slot is available or context is cancelled.
func (b *Bulkhead) Acquire(ctx context.Context) error {
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes a slot without blocking. It reports false when the
// bulkhead is full.
func (b *Bulkhead) TryAcquire() bool {
	select {
	case b.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

// InFlight returns the number of held slots.
func (b *Bulkhead) InFlight() int {
	return len(b.sem)
}

// Release frees a slot.
func (b *Bulkhead) Release() {
	<-b.sem
}
