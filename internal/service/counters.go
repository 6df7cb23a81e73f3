package service

import (
	"context"
	"sync"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
)

// AggregateCounters are the running totals shown on a detail view. They are
// seeded from the catalog and never reconciled with the ledger or the
// donor's account.
type AggregateCounters struct {
	mu     sync.Mutex
	totals domain.AggregateTotals
}

// NewAggregateCounters starts the counters at the catalog totals.
func NewAggregateCounters(raised, donors int64) *AggregateCounters {
	return &AggregateCounters{totals: domain.AggregateTotals{TotalRaised: raised, TotalDonors: donors}}
}

// OnDonation adds the amount and counts one more donor, even for a repeat
// donor.
func (c *AggregateCounters) OnDonation(_ context.Context, ev *domain.DonationEvent) error {
	if ev == nil {
		return &domain.ErrValidation{Field: "event", Message: "donation event is required"}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totals.TotalRaised += ev.Amount
	c.totals.TotalDonors++
	return nil
}

// Totals returns the current totals.
func (c *AggregateCounters) Totals() domain.AggregateTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals
}
