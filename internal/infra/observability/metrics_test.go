package observability_test

import (
	"testing"

	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
)

func TestMetrics_RecordDonation(t *testing.T) {
	m := observability.NewMetrics()

	m.RecordDonation("ngo-1", 1000)
	m.RecordDonation("ngo-1", 500)
	m.RecordDonation("ngo-2", 100)

	if got := m.DonationCount("ngo-1"); got != 2 {
		t.Errorf("expected 2 donations for ngo-1, got %v", got)
	}
	if got := m.DonationCount("ngo-2"); got != 1 {
		t.Errorf("expected 1 donation for ngo-2, got %v", got)
	}
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := observability.NewMetrics()
	b := observability.NewMetrics()

	a.IncrListenerFailure("ledger")

	if got := b.ListenerFailureCount("ledger"); got != 0 {
		t.Errorf("expected isolated registry, got %v", got)
	}
	if got := a.ListenerFailureCount("ledger"); got != 1 {
		t.Errorf("expected 1 failure, got %v", got)
	}
}

func TestMetrics_Gather(t *testing.T) {
	m := observability.NewMetrics()
	m.SetActiveViews(3)
	m.IncrAuth("login")

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	for _, name := range []string{"donor_active_views", "donor_auth_operations_total"} {
		if !found[name] {
			t.Errorf("expected metric family %s", name)
		}
	}
}
