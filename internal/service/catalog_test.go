package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/memstore"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"go.uber.org/zap"
)

func newCatalog() *service.CatalogService {
	return service.NewCatalogService(memstore.New(), zap.NewNop())
}

func TestCatalogList_NoFilter(t *testing.T) {
	got, err := newCatalog().List(context.Background(), domain.CatalogFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 organizations, got %d", len(got))
	}
	if got[0].ID != "ngo-1" || got[0].TrustTier != domain.TrustTierExcellent || !got[0].TrustBadge {
		t.Errorf("unexpected first entry %+v", got[0])
	}
}

func TestCatalogList_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.CatalogFilter
		want   []string
	}{
		{"search is case insensitive", domain.CatalogFilter{Search: "WATER"}, []string{"ngo-3"}},
		{"category", domain.CatalogFilter{Category: "Environment"}, []string{"ngo-1", "ngo-6"}},
		{"city", domain.CatalogFilter{City: "Jaipur"}, []string{"ngo-4"}},
		{"All disables facets", domain.CatalogFilter{Category: "All", City: "All"}, []string{"ngo-1", "ngo-2", "ngo-3", "ngo-4", "ngo-5", "ngo-6"}},
		{"facets combine", domain.CatalogFilter{Category: "Environment", City: "Mumbai"}, []string{"ngo-1"}},
		{"no match", domain.CatalogFilter{Search: "zzz"}, []string{}},
	}

	svc := newCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d results, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestCatalogFacets(t *testing.T) {
	f, err := newCatalog().Facets(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.Categories[0] != service.FacetAll || f.Cities[0] != service.FacetAll {
		t.Errorf("expected All first, got %v / %v", f.Categories, f.Cities)
	}
	if len(f.Categories) != 6 {
		t.Errorf("expected 6 categories, got %v", f.Categories)
	}
	if len(f.Cities) != 7 {
		t.Errorf("expected 7 cities, got %v", f.Cities)
	}
}

func TestCatalogGet_NotFound(t *testing.T) {
	_, err := newCatalog().Get(context.Background(), "ngo-404")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogTicker(t *testing.T) {
	items, err := newCatalog().Ticker(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := map[string]string{
		"Total Verified Impact": "₹124.5Cr",
		"Projects Funded":       "450",
		"Carbon Offset":         "12k Tons",
		"Lives Impacted":        "8.9L",
		"Active Volunteers":     "3k",
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for _, it := range items {
		if want[it.Label] != it.Value {
			t.Errorf("%s: expected %q, got %q", it.Label, want[it.Label], it.Value)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[int64]string{
		41000000: "₹4.1Cr",
		9800000:  "₹98.0L",
		25000:    "25k",
		999:      "999",
	}
	for in, want := range tests {
		if got := service.FormatAmount(in); got != want {
			t.Errorf("FormatAmount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestCatalogImpactReport(t *testing.T) {
	r, err := newCatalog().ImpactReport(context.Background(), "ngo-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if r.NGOName != "Green Earth Initiative" {
		t.Errorf("expected Green Earth Initiative, got %q", r.NGOName)
	}
	if r.ImpactScore != 98 || r.ScoreRating != domain.ScoreRatingExcellent {
		t.Errorf("expected excellent 98, got %s %d", r.ScoreRating, r.ImpactScore)
	}
	if !strings.HasPrefix(r.Summary, "This quarter, the organization") {
		t.Errorf("unexpected summary %q", r.Summary)
	}
	if r.FundUtilization.Programs != 78 {
		t.Errorf("expected 78%% programs, got %d", r.FundUtilization.Programs)
	}

	if len(r.Projects) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(r.Projects))
	}
	if p := r.Projects[0]; p.ID != "proj-1" || p.UtilizedPercent != 84 {
		t.Errorf("expected proj-1 at 84%%, got %+v", p)
	}
	if r.TotalAllocated != 12000000 || r.TotalUtilized != 9750000 {
		t.Errorf("expected totals 12000000/9750000, got %d/%d", r.TotalAllocated, r.TotalUtilized)
	}

	if len(r.QuarterlyTrend) != 5 {
		t.Fatalf("expected 5 quarters, got %d", len(r.QuarterlyTrend))
	}
	if q := r.QuarterlyTrend[4]; q.Quarter != "Q1 2026" || q.Impact != 92 {
		t.Errorf("expected Q1 2026 at 92, got %+v", q)
	}
}

func TestCatalogImpactReport_NotFound(t *testing.T) {
	_, err := newCatalog().ImpactReport(context.Background(), "ngo-404")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUtilizedPercent(t *testing.T) {
	tests := []struct {
		utilized, allocated int64
		want                int
	}{
		{4200000, 5000000, 84},
		{1850000, 2000000, 93},
		{2, 3, 67},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := service.UtilizedPercent(tt.utilized, tt.allocated); got != tt.want {
			t.Errorf("UtilizedPercent(%d, %d) = %d, want %d", tt.utilized, tt.allocated, got, tt.want)
		}
	}
}

func TestRateImpactScore(t *testing.T) {
	tests := map[int]string{
		98: domain.ScoreRatingExcellent,
		90: domain.ScoreRatingExcellent,
		89: domain.ScoreRatingGood,
		75: domain.ScoreRatingGood,
		74: domain.ScoreRatingAttention,
	}
	for score, want := range tests {
		if got, _ := domain.RateImpactScore(score); got != want {
			t.Errorf("RateImpactScore(%d) = %s, want %s", score, got, want)
		}
	}
}
