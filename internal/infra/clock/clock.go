// Package clock provides the time and latency strategies injected into the
// simulated flows, so tests run without real waiting.
package clock

import (
	"context"
	"sync"
	"time"
)

// System is the wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Fixed is a settable clock for tests.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed returns a clock frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the frozen time.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Sleep waits for the full duration. It respects context cancellation.
type Sleep struct{}

// Wait blocks for d or until ctx is done.
func (Sleep) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// Instant returns immediately.
type Instant struct{}

// Wait only reports a cancelled context.
func (Instant) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Gate blocks every Wait until Release is called. Tests use it to hold a
// submission in its processing state.
type Gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

// Wait signals entry and blocks until the gate is released or ctx is done.
func (g *Gate) Wait(ctx context.Context, _ time.Duration) error {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.release:
		return nil
	}
}

// Entered is signalled each time a caller starts waiting.
func (g *Gate) Entered() <-chan struct{} { return g.entered }

// Release opens the gate for all current and future waiters.
func (g *Gate) Release() {
	g.once.Do(func() { close(g.release) })
}
