package handler

import (
	"net/http"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/service"
	"github.com/boddenberg/donor-bfa-go/internal/session"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Detail views & donations
// ============================================================

func mountViewHandler(svc *service.ViewService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/views")
		defer span.End()

		var req domain.ViewRequest
		if err := decodeBody(r, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		var account *session.Container
		if sess := SessionFromContext(ctx); sess != nil {
			account = sess.Account
		}

		v, err := svc.Mount(ctx, req.NGOID, account)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, v.Snapshot())
	}
}

func getViewHandler(svc *service.ViewService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/{viewId}")
		defer span.End()

		snap, err := svc.Get(ctx, chi.URLParam(r, "viewId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func unmountViewHandler(svc *service.ViewService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/views/{viewId}")
		defer span.End()

		if err := svc.Unmount(ctx, chi.URLParam(r, "viewId")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func donateHandler(svc *service.ViewService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/views/{viewId}/donations")
		defer span.End()

		viewID := chi.URLParam(r, "viewId")
		span.SetAttributes(attribute.String("view.id", viewID))

		var req domain.DonationRequest
		if err := decodeBody(r, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		snap, err := svc.Donate(ctx, viewID, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, snap)
	}
}

func receiptHandler(svc *service.ViewService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/views/{viewId}/receipt")
		defer span.End()

		receipt, err := svc.Receipt(ctx, chi.URLParam(r, "viewId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, receipt)
	}
}
