// Package gateway holds the payment gateway adapters. The only real-world
// behaviour of the shipped gateway is latency; it never moves money.
package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/resilience"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("gateway")

const serviceName = "payment-gateway"

// Simulated stands in for a payment provider by waiting a fixed delay.
type Simulated struct {
	latency port.Latency
	delay   time.Duration
}

// NewSimulated creates a gateway that waits delay on every charge.
func NewSimulated(latency port.Latency, delay time.Duration) *Simulated {
	return &Simulated{latency: latency, delay: delay}
}

// Charge waits the configured delay and always succeeds unless ctx ends.
func (g *Simulated) Charge(ctx context.Context, ev *domain.DonationEvent) error {
	ctx, span := tracer.Start(ctx, "Simulated.Charge")
	defer span.End()
	span.SetAttributes(attribute.Int64("donation.amount", ev.Amount))

	return g.latency.Wait(ctx, g.delay)
}

// Resilient wraps a gateway with retry and a circuit breaker.
type Resilient struct {
	inner port.PaymentGateway
	cb    *gobreaker.CircuitBreaker
	cfg   resilience.Config
}

// NewResilient creates the wrapper.
func NewResilient(inner port.PaymentGateway, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *Resilient {
	return &Resilient{inner: inner, cb: cb, cfg: cfg}
}

// Charge runs the inner charge with retry, inside the circuit breaker.
func (g *Resilient) Charge(ctx context.Context, ev *domain.DonationEvent) error {
	ctx, span := tracer.Start(ctx, "Resilient.Charge")
	defer span.End()

	_, err := g.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, g.cfg, func() error {
			return g.inner.Charge(ctx, ev)
		})
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.ErrCircuitOpen{Service: serviceName}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &domain.ErrExternalService{Service: serviceName, Err: err}
}
