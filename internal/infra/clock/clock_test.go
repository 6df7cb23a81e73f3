package clock_test

import (
	"context"
	"testing"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/infra/clock"
)

func TestSleep_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := (clock.Sleep{}).Wait(ctx, time.Second); err == nil {
		t.Fatal("expected context error")
	}
}

func TestSleep_Waits(t *testing.T) {
	start := time.Now()
	if err := (clock.Sleep{}).Wait(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("expected Wait to block for the full duration")
	}
}

func TestInstant_DoesNotBlock(t *testing.T) {
	start := time.Now()
	if err := (clock.Instant{}).Wait(context.Background(), time.Hour); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("expected Instant to return immediately")
	}
}

func TestFixed_Advance(t *testing.T) {
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := clock.NewFixed(base)
	c.Advance(time.Hour)

	if got := c.Now(); !got.Equal(base.Add(time.Hour)) {
		t.Errorf("expected %v, got %v", base.Add(time.Hour), got)
	}
}

func TestGate_ReleaseUnblocks(t *testing.T) {
	g := clock.NewGate()
	done := make(chan error, 1)

	go func() { done <- g.Wait(context.Background(), time.Hour) }()

	<-g.Entered()
	g.Release()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("gate did not release")
	}
}
