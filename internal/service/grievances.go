package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var grievanceTracer = otel.Tracer("service/grievances")

// GrievanceStatusSubmitted is the status of a new report.
const GrievanceStatusSubmitted = "submitted"

// GrievanceService files reports against organizations.
type GrievanceService struct {
	catalog port.CatalogReader
	store   port.GrievanceStore
	clock   port.Clock
	logger  *zap.Logger
}

// NewGrievanceService creates a new grievance service.
func NewGrievanceService(catalog port.CatalogReader, store port.GrievanceStore, clock port.Clock, logger *zap.Logger) *GrievanceService {
	return &GrievanceService{catalog: catalog, store: store, clock: clock, logger: logger}
}

// File validates and stores a report.
func (s *GrievanceService) File(ctx context.Context, ngoID string, req *domain.GrievanceRequest) (*domain.Grievance, error) {
	ctx, span := grievanceTracer.Start(ctx, "GrievanceService.File")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	org, err := s.catalog.GetOrganization(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	if !domain.ValidGrievanceCategory(req.Category) {
		return nil, &domain.ErrValidation{
			Field:   "category",
			Message: "must be one of: " + strings.Join(domain.GrievanceCategories, ", "),
		}
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, &domain.ErrValidation{Field: "description", Message: "description is required"}
	}

	g := &domain.Grievance{
		ID:          "GRV-" + strings.ToUpper(uuid.NewString()[:8]),
		NGOID:       org.ID,
		NGOName:     org.Name,
		Category:    req.Category,
		Description: desc,
		Status:      GrievanceStatusSubmitted,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.store.SaveGrievance(ctx, g); err != nil {
		return nil, fmt.Errorf("save grievance: %w", err)
	}

	s.logger.Info("grievance filed",
		zap.String("grievance_id", g.ID),
		zap.String("ngo_id", org.ID),
		zap.String("category", g.Category),
	)
	return g, nil
}

// List returns the reports filed against an organization.
func (s *GrievanceService) List(ctx context.Context, ngoID string) ([]domain.Grievance, error) {
	ctx, span := grievanceTracer.Start(ctx, "GrievanceService.List")
	defer span.End()

	if _, err := s.catalog.GetOrganization(ctx, ngoID); err != nil {
		return nil, err
	}
	return s.store.ListGrievances(ctx, ngoID)
}
