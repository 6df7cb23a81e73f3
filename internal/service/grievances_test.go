package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/clock"
	"github.com/boddenberg/donor-bfa-go/internal/infra/memstore"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"go.uber.org/zap"
)

func newGrievanceService() *service.GrievanceService {
	store := memstore.New()
	return service.NewGrievanceService(store, store, clock.NewFixed(testNow), zap.NewNop())
}

func TestGrievanceFile(t *testing.T) {
	svc := newGrievanceService()

	g, err := svc.File(context.Background(), "ngo-3", &domain.GrievanceRequest{
		Category:    "Project Delays",
		Description: "  Well construction has not started.  ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(g.ID, "GRV-") || len(g.ID) != 12 {
		t.Errorf("unexpected id %q", g.ID)
	}
	if g.Description != "Well construction has not started." {
		t.Errorf("expected trimmed description, got %q", g.Description)
	}
	if g.NGOName != "Clean Water Alliance" || g.Status != service.GrievanceStatusSubmitted {
		t.Errorf("unexpected grievance %+v", g)
	}

	list, err := svc.List(context.Background(), "ngo-3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || list[0].ID != g.ID {
		t.Errorf("expected the filed grievance, got %+v", list)
	}
}

func TestGrievanceFile_Validation(t *testing.T) {
	svc := newGrievanceService()

	tests := []struct {
		name  string
		req   domain.GrievanceRequest
		field string
	}{
		{"unknown category", domain.GrievanceRequest{Category: "Spam", Description: "x"}, "category"},
		{"blank description", domain.GrievanceRequest{Category: "Other", Description: "   "}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.File(context.Background(), "ngo-1", &tt.req)
			var ve *domain.ErrValidation
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestGrievanceFile_UnknownOrganization(t *testing.T) {
	_, err := newGrievanceService().File(context.Background(), "ngo-404", &domain.GrievanceRequest{Category: "Other", Description: "x"})
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
