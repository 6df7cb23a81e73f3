// Package event provides the typed donation bus. A published DonationEvent
// is handed to every subscribed listener in subscription order; listeners
// are independent, so one failing listener never stops or rolls back the
// others.
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("event")

type subscription struct {
	id       uint64
	name     string
	listener port.DonationListener
}

// Bus fans donation events out to its listeners.
type Bus struct {
	mu      sync.RWMutex
	subs    []subscription
	nextID  uint64
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewBus creates an empty bus.
func NewBus(metrics *observability.Metrics, logger *zap.Logger) *Bus {
	return &Bus{metrics: metrics, logger: logger}
}

// Subscribe registers a named listener and returns a function that removes it.
func (b *Bus) Subscribe(name string, l port.DonationListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, name: name, listener: l})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the subscribed listener names in delivery order.
func (b *Bus) Listeners() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, len(b.subs))
	for i, s := range b.subs {
		names[i] = s.name
	}
	return names
}

// Publish delivers ev to every listener. Failures are logged, counted and
// combined into the returned error; they are never compensated.
func (b *Bus) Publish(ctx context.Context, ev *domain.DonationEvent) error {
	ctx, span := tracer.Start(ctx, "Bus.Publish")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("donation.amount", ev.Amount),
		attribute.String("donation.target", ev.Target),
	)

	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	var errs error
	for _, s := range subs {
		if err := deliver(ctx, s.listener, ev); err != nil {
			b.logger.Error("donation listener failed",
				zap.String("listener", s.name),
				zap.Int64("amount", ev.Amount),
				zap.Error(err),
			)
			if b.metrics != nil {
				b.metrics.IncrListenerFailure(s.name)
			}
			errs = multierr.Append(errs, fmt.Errorf("listener %s: %w", s.name, err))
		}
	}
	return errs
}

func deliver(ctx context.Context, l port.DonationListener, ev *domain.DonationEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return l.OnDonation(ctx, ev)
}
