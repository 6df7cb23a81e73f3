package handler

import (
	"net/http"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Catalog
// ============================================================

func listNGOsHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos")
		defer span.End()

		q := r.URL.Query()
		filter := domain.CatalogFilter{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			City:     q.Get("city"),
		}

		orgs, err := svc.List(ctx, filter)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data":  orgs,
			"total": len(orgs),
		})
	}
}

func ngoFacetsHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/facets")
		defer span.End()

		facets, err := svc.Facets(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, facets)
	}
}

func getNGOHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/{ngoId}")
		defer span.End()

		ngoID := chi.URLParam(r, "ngoId")
		span.SetAttributes(attribute.String("ngo.id", ngoID))

		org, err := svc.Get(ctx, ngoID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, org)
	}
}

func ngoTimelineHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/{ngoId}/timeline")
		defer span.End()

		events, err := svc.Timeline(ctx, chi.URLParam(r, "ngoId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": events})
	}
}

func ngoProofsHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/{ngoId}/proofs")
		defer span.End()

		proofs, err := svc.Proofs(ctx, chi.URLParam(r, "ngoId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": proofs})
	}
}

func ngoReportHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/{ngoId}/report")
		defer span.End()

		report, err := svc.ImpactReport(ctx, chi.URLParam(r, "ngoId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func tickerHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ticker")
		defer span.End()

		items, err := svc.Ticker(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": items})
	}
}

// ============================================================
// Grievances
// ============================================================

func fileGrievanceHandler(svc *service.GrievanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/ngos/{ngoId}/grievances")
		defer span.End()

		var req domain.GrievanceRequest
		if err := decodeBody(r, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		g, err := svc.File(ctx, chi.URLParam(r, "ngoId"), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, g)
	}
}

func listGrievancesHandler(svc *service.GrievanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ngos/{ngoId}/grievances")
		defer span.End()

		list, err := svc.List(ctx, chi.URLParam(r, "ngoId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": list})
	}
}
