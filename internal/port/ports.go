// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
)

// CatalogReader serves the static organization catalog and its fixtures.
type CatalogReader interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	GetOrganization(ctx context.Context, ngoID string) (*domain.Organization, error)
	SeedLedger(ctx context.Context, ngoID string) ([]domain.TransactionRecord, error)
	Timeline(ctx context.Context, ngoID string) ([]domain.TimelineEvent, error)
	Proofs(ctx context.Context, ngoID string) ([]domain.ProofItem, error)
	ImpactNarrative(ctx context.Context, ngoID string) (string, error)
	QuarterlyImpact(ctx context.Context) ([]domain.QuarterlyImpact, error)
	TickerStats(ctx context.Context) (*domain.TickerStats, error)
	UserDonations(ctx context.Context, accountID string) ([]domain.UserDonation, error)
}

// GrievanceStore keeps filed grievance reports.
type GrievanceStore interface {
	SaveGrievance(ctx context.Context, g *domain.Grievance) error
	ListGrievances(ctx context.Context, ngoID string) ([]domain.Grievance, error)
}

// PaymentGateway settles a donation. The shipped gateway is simulated.
type PaymentGateway interface {
	Charge(ctx context.Context, ev *domain.DonationEvent) error
}

// DonationListener consumes donation events published on the bus.
type DonationListener interface {
	OnDonation(ctx context.Context, ev *domain.DonationEvent) error
}

// DonationListenerFunc adapts a function to DonationListener.
type DonationListenerFunc func(ctx context.Context, ev *domain.DonationEvent) error

// OnDonation calls f.
func (f DonationListenerFunc) OnDonation(ctx context.Context, ev *domain.DonationEvent) error {
	return f(ctx, ev)
}

// Latency stands in for network latency. Tests inject an instant strategy.
type Latency interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	// Touch extends the TTL of a live entry.
	Touch(key string) bool
	Len() int
}
