package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/memstore"
)

func TestStore_ListOrganizations(t *testing.T) {
	s := memstore.New()

	orgs, err := s.ListOrganizations(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(orgs) != 6 {
		t.Fatalf("expected 6 organizations, got %d", len(orgs))
	}
	if orgs[0].ID != "ngo-1" {
		t.Errorf("expected fixture order, got %s first", orgs[0].ID)
	}
}

func TestStore_GetOrganization_ReturnsCopy(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	o, err := s.GetOrganization(ctx, "ngo-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	o.Projects[0].Name = "mutated"

	again, _ := s.GetOrganization(ctx, "ngo-1")
	if again.Projects[0].Name != "Urban Tree Plantation" {
		t.Errorf("expected fixtures to be isolated from callers, got %q", again.Projects[0].Name)
	}
}

func TestStore_GetOrganization_NotFound(t *testing.T) {
	s := memstore.New()

	_, err := s.GetOrganization(context.Background(), "ngo-404")
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SeedLedger(t *testing.T) {
	s := memstore.New()

	seed, err := s.SeedLedger(context.Background(), "ngo-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(seed) != 10 {
		t.Fatalf("expected 10 seed records, got %d", len(seed))
	}
	for _, r := range seed {
		if !r.Category.Valid() {
			t.Errorf("seed record %s has invalid category %q", r.ID, r.Category)
		}
	}
}

func TestStore_UserDonations(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	demo, _ := s.UserDonations(ctx, memstore.DemoAccountID)
	if len(demo) != 4 {
		t.Errorf("expected 4 demo donations, got %d", len(demo))
	}
	fresh, _ := s.UserDonations(ctx, "user-123")
	if len(fresh) != 0 {
		t.Errorf("expected no history for fresh account, got %d", len(fresh))
	}
}

func TestStore_Grievances(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	g := &domain.Grievance{ID: "g-1", NGOID: "ngo-3", Category: "Other", Description: "late", CreatedAt: time.Now()}
	if err := s.SaveGrievance(ctx, g); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	list, _ := s.ListGrievances(ctx, "ngo-3")
	if len(list) != 1 || list[0].ID != "g-1" {
		t.Errorf("expected saved grievance, got %+v", list)
	}
	other, _ := s.ListGrievances(ctx, "ngo-1")
	if len(other) != 0 {
		t.Errorf("expected no grievances for ngo-1, got %d", len(other))
	}
}
