// Package service provides the business logic layer (use cases).
// CatalogService serves the organization catalog and its transparency
// artifacts; ViewService drives detail views and the donation flow;
// SessionService, BookmarkService and GrievanceService cover the donor side.
package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var catalogTracer = otel.Tracer("service/catalog")

// FacetAll disables a catalog facet.
const FacetAll = "All"

// CatalogService reads the static catalog.
type CatalogService struct {
	reader port.CatalogReader
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(reader port.CatalogReader, logger *zap.Logger) *CatalogService {
	return &CatalogService{reader: reader, logger: logger}
}

// ============================================================
// Catalog: GET /v1/ngos
// ============================================================

// List returns the organizations matching filter, in catalog order.
func (s *CatalogService) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.OrganizationSummary, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("filter.search", filter.Search),
		attribute.String("filter.category", filter.Category),
		attribute.String("filter.city", filter.City),
	)

	orgs, err := s.reader.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]*domain.OrganizationSummary, 0, len(orgs))
	for i := range orgs {
		o := &orgs[i]
		if search != "" &&
			!strings.Contains(strings.ToLower(o.Name), search) &&
			!strings.Contains(strings.ToLower(o.Description), search) {
			continue
		}
		if !facetMatches(filter.Category, o.Category) || !facetMatches(filter.City, o.City) {
			continue
		}
		out = append(out, domain.Summarize(o))
	}

	s.logger.Debug("catalog listed",
		zap.Int("matches", len(out)),
		zap.Int("total", len(orgs)),
	)
	return out, nil
}

func facetMatches(want, got string) bool {
	return want == "" || want == FacetAll || want == got
}

// Facets returns the selectable categories and cities, "All" first, in
// order of first appearance.
func (s *CatalogService) Facets(ctx context.Context) (*domain.CatalogFacets, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Facets")
	defer span.End()

	orgs, err := s.reader.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	facets := &domain.CatalogFacets{
		Categories: []string{FacetAll},
		Cities:     []string{FacetAll},
	}
	seenCat := map[string]bool{}
	seenCity := map[string]bool{}
	for _, o := range orgs {
		if !seenCat[o.Category] {
			seenCat[o.Category] = true
			facets.Categories = append(facets.Categories, o.Category)
		}
		if !seenCity[o.City] {
			seenCity[o.City] = true
			facets.Cities = append(facets.Cities, o.City)
		}
	}
	return facets, nil
}

// Get returns one organization.
func (s *CatalogService) Get(ctx context.Context, ngoID string) (*domain.OrganizationSummary, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	o, err := s.reader.GetOrganization(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	return domain.Summarize(o), nil
}

func (s *CatalogService) Timeline(ctx context.Context, ngoID string) ([]domain.TimelineEvent, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Timeline")
	defer span.End()

	return s.reader.Timeline(ctx, ngoID)
}

func (s *CatalogService) Proofs(ctx context.Context, ngoID string) ([]domain.ProofItem, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Proofs")
	defer span.End()

	return s.reader.Proofs(ctx, ngoID)
}

// ============================================================
// Impact report: GET /v1/ngos/{ngoId}/report
// ============================================================

// ImpactReport assembles the quarterly report of an organization. The score
// is its trust score; the narrative and the trend are shared fixtures.
func (s *CatalogService) ImpactReport(ctx context.Context, ngoID string) (*domain.ImpactReport, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.ImpactReport")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	o, err := s.reader.GetOrganization(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	summary, err := s.reader.ImpactNarrative(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	trend, err := s.reader.QuarterlyImpact(ctx)
	if err != nil {
		return nil, err
	}

	score := min(max(o.TrustScore, 0), 100)
	rating, explanation := domain.RateImpactScore(score)
	report := &domain.ImpactReport{
		NGOID:            o.ID,
		NGOName:          o.Name,
		Summary:          summary,
		ImpactScore:      score,
		ScoreRating:      rating,
		ScoreExplanation: explanation,
		FundUtilization:  o.FundUtilization,
		Projects:         make([]domain.ProjectUtilization, 0, len(o.Projects)),
		QuarterlyTrend:   trend,
	}
	for _, p := range o.Projects {
		report.Projects = append(report.Projects, domain.ProjectUtilization{
			ID:              p.ID,
			Name:            p.Name,
			FundAllocated:   p.FundAllocated,
			FundUtilized:    p.FundUtilized,
			UtilizedPercent: UtilizedPercent(p.FundUtilized, p.FundAllocated),
		})
		report.TotalAllocated += p.FundAllocated
		report.TotalUtilized += p.FundUtilized
	}

	s.logger.Debug("impact report built",
		zap.String("ngo_id", o.ID),
		zap.Int("projects", len(report.Projects)),
	)
	return report, nil
}

// UtilizedPercent rounds utilized/allocated to a whole percentage. A project
// with nothing allocated reports 0.
func UtilizedPercent(utilized, allocated int64) int {
	if allocated <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(utilized * 100).Div(decimal.NewFromInt(allocated)).Round(0).IntPart())
}

// ============================================================
// Ticker: GET /v1/ticker
// ============================================================

// Ticker returns the platform-wide stats formatted for display.
func (s *CatalogService) Ticker(ctx context.Context) ([]domain.TickerItem, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Ticker")
	defer span.End()

	st, err := s.reader.TickerStats(ctx)
	if err != nil {
		return nil, err
	}

	return []domain.TickerItem{
		{Label: "Total Verified Impact", Value: FormatAmount(st.TotalVerifiedImpact)},
		{Label: "Projects Funded", Value: strconv.FormatInt(st.ProjectsFunded, 10)},
		{Label: "Carbon Offset", Value: scaled(st.CarbonOffset, 1000, 0) + "k Tons"},
		{Label: "Lives Impacted", Value: FormatCount(st.LivesImpacted)},
		{Label: "Active Volunteers", Value: FormatCount(st.VolunteersActive)},
	}, nil
}

// FormatAmount abbreviates a rupee amount: ₹124.5Cr, ₹8.9L, 25k.
func FormatAmount(n int64) string {
	switch {
	case n >= 10_000_000:
		return "₹" + scaled(n, 10_000_000, 1) + "Cr"
	case n >= 100_000:
		return "₹" + scaled(n, 100_000, 1) + "L"
	}
	return FormatCount(n)
}

// FormatCount abbreviates a plain count: 8.9L, 3k, 450.
func FormatCount(n int64) string {
	switch {
	case n >= 10_000_000:
		return scaled(n, 10_000_000, 1) + "Cr"
	case n >= 100_000:
		return scaled(n, 100_000, 1) + "L"
	case n >= 1000:
		return scaled(n, 1000, 0) + "k"
	}
	return strconv.FormatInt(n, 10)
}

func scaled(n, unit int64, places int32) string {
	return decimal.NewFromInt(n).Div(decimal.NewFromInt(unit)).StringFixed(places)
}
