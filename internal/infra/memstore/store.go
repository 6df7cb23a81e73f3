// Package memstore is the in-memory data backend of the BFA. It serves the
// static catalog fixtures and keeps grievance reports for the process
// lifetime.
package memstore

import (
	"context"
	"sync"

	"github.com/boddenberg/donor-bfa-go/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("memstore")

// DemoAccountID owns the fixture donation history.
const DemoAccountID = "user-1"

// Store implements port.CatalogReader and port.GrievanceStore.
type Store struct {
	mu         sync.RWMutex
	grievances map[string][]domain.Grievance
}

// New creates an empty store over the static fixtures.
func New() *Store {
	return &Store{grievances: make(map[string][]domain.Grievance)}
}

// ListOrganizations returns a copy of the catalog in fixture order.
func (s *Store) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	_, span := tracer.Start(ctx, "Store.ListOrganizations")
	defer span.End()

	out := make([]domain.Organization, len(organizations))
	for i := range organizations {
		out[i] = cloneOrganization(&organizations[i])
	}
	return out, nil
}

// GetOrganization returns one organization or ErrNotFound.
func (s *Store) GetOrganization(ctx context.Context, ngoID string) (*domain.Organization, error) {
	_, span := tracer.Start(ctx, "Store.GetOrganization")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	for i := range organizations {
		if organizations[i].ID == ngoID {
			o := cloneOrganization(&organizations[i])
			return &o, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "organization", ID: ngoID}
}

// SeedLedger returns the fixture ledger rows a new detail view starts from.
// Every organization shares the same fixture set.
func (s *Store) SeedLedger(ctx context.Context, ngoID string) ([]domain.TransactionRecord, error) {
	if _, err := s.GetOrganization(ctx, ngoID); err != nil {
		return nil, err
	}
	out := make([]domain.TransactionRecord, len(seedTransactions))
	copy(out, seedTransactions)
	return out, nil
}

// Timeline returns the impact timeline of an organization.
func (s *Store) Timeline(ctx context.Context, ngoID string) ([]domain.TimelineEvent, error) {
	if _, err := s.GetOrganization(ctx, ngoID); err != nil {
		return nil, err
	}
	out := make([]domain.TimelineEvent, len(timelineEvents))
	copy(out, timelineEvents)
	return out, nil
}

// Proofs returns the proof-of-work gallery of an organization.
func (s *Store) Proofs(ctx context.Context, ngoID string) ([]domain.ProofItem, error) {
	if _, err := s.GetOrganization(ctx, ngoID); err != nil {
		return nil, err
	}
	out := make([]domain.ProofItem, len(proofItems))
	copy(out, proofItems)
	return out, nil
}

// ImpactNarrative returns the quarterly report text of an organization.
func (s *Store) ImpactNarrative(ctx context.Context, ngoID string) (string, error) {
	if _, err := s.GetOrganization(ctx, ngoID); err != nil {
		return "", err
	}
	return impactNarrative, nil
}

// QuarterlyImpact returns the platform-wide quarterly trend, oldest first.
func (s *Store) QuarterlyImpact(_ context.Context) ([]domain.QuarterlyImpact, error) {
	out := make([]domain.QuarterlyImpact, len(quarterlyImpact))
	copy(out, quarterlyImpact)
	return out, nil
}

// TickerStats returns the platform-wide headline numbers.
func (s *Store) TickerStats(_ context.Context) (*domain.TickerStats, error) {
	stats := tickerStats
	return &stats, nil
}

// UserDonations returns the donation history of an account. Only the demo
// account has history; fresh signups start empty.
func (s *Store) UserDonations(_ context.Context, accountID string) ([]domain.UserDonation, error) {
	if accountID != DemoAccountID {
		return []domain.UserDonation{}, nil
	}
	out := make([]domain.UserDonation, len(userDonations))
	copy(out, userDonations)
	return out, nil
}

// SaveGrievance appends a report.
func (s *Store) SaveGrievance(ctx context.Context, g *domain.Grievance) error {
	_, span := tracer.Start(ctx, "Store.SaveGrievance")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.grievances[g.NGOID] = append(s.grievances[g.NGOID], *g)
	return nil
}

// ListGrievances returns the reports filed against an organization.
func (s *Store) ListGrievances(_ context.Context, ngoID string) ([]domain.Grievance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Grievance, len(s.grievances[ngoID]))
	copy(out, s.grievances[ngoID])
	return out, nil
}

func cloneOrganization(o *domain.Organization) domain.Organization {
	c := *o
	c.Projects = append([]domain.Project(nil), o.Projects...)
	c.ImpactMetrics = append([]domain.ImpactMetric(nil), o.ImpactMetrics...)
	return c
}
