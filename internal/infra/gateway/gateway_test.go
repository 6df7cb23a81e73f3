package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/clock"
	"github.com/boddenberg/donor-bfa-go/internal/infra/gateway"
	"github.com/boddenberg/donor-bfa-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type flakyGateway struct {
	failures int
	calls    int
}

func (f *flakyGateway) Charge(_ context.Context, _ *domain.DonationEvent) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("provider unavailable")
	}
	return nil
}

func TestSimulated_Charge(t *testing.T) {
	g := gateway.NewSimulated(clock.Instant{}, 1500*time.Millisecond)

	if err := g.Charge(context.Background(), &domain.DonationEvent{Amount: 1000}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSimulated_ChargeCancelled(t *testing.T) {
	g := gateway.NewSimulated(clock.Sleep{}, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Charge(ctx, &domain.DonationEvent{Amount: 1000}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestResilient_RetriesTransientFailure(t *testing.T) {
	inner := &flakyGateway{failures: 2}
	g := gateway.NewResilient(inner, resilience.NewCircuitBreaker("test", zap.NewNop(), nil), resilience.Config{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	})

	if err := g.Charge(context.Background(), &domain.DonationEvent{Amount: 500}); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestResilient_WrapsPersistentFailure(t *testing.T) {
	inner := &flakyGateway{failures: 100}
	g := gateway.NewResilient(inner, resilience.NewCircuitBreaker("test", zap.NewNop(), nil), resilience.Config{
		MaxRetries:     1,
		InitialBackoff: time.Millisecond,
	})

	err := g.Charge(context.Background(), &domain.DonationEvent{Amount: 500})
	var ext *domain.ErrExternalService
	if !errors.As(err, &ext) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
}

func TestResilient_OpenCircuit(t *testing.T) {
	inner := &flakyGateway{failures: 100}
	cb := resilience.NewCircuitBreaker("test", zap.NewNop(), nil)
	g := gateway.NewResilient(inner, cb, resilience.Config{})

	for i := 0; i < 5; i++ {
		_ = g.Charge(context.Background(), &domain.DonationEvent{Amount: 500})
	}

	err := g.Charge(context.Background(), &domain.DonationEvent{Amount: 500})
	var open *domain.ErrCircuitOpen
	if !errors.As(err, &open) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestResilient_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test", zap.NewNop(), nil)
	g := gateway.NewResilient(gateway.NewSimulated(clock.Instant{}, time.Second), cb, resilience.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		if err := g.Charge(ctx, &domain.DonationEvent{Amount: 500}); !errors.Is(err, context.Canceled) {
			t.Fatalf("attempt %d: expected context.Canceled, got %v", i, err)
		}
	}

	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("expected closed breaker, got %s", cb.State())
	}
	if err := g.Charge(context.Background(), &domain.DonationEvent{Amount: 500}); err != nil {
		t.Errorf("expected healthy charge to succeed, got %v", err)
	}
}
