package handler

import (
	"net/http"

	"github.com/boddenberg/donor-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Bookmarks
// ============================================================

type bookmarksResponse struct {
	Bookmarks  []string `json:"bookmarks"`
	Bookmarked *bool    `json:"bookmarked,omitempty"`
	CanCompare bool     `json:"canCompare"`
}

func newBookmarksResponse(ids []string) bookmarksResponse {
	return bookmarksResponse{Bookmarks: ids, CanCompare: len(ids) >= service.MinComparison}
}

func listBookmarksHandler(svc *service.BookmarkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bookmarks")
		defer span.End()

		writeJSON(w, http.StatusOK, newBookmarksResponse(svc.List(ctx, SessionFromContext(ctx))))
	}
}

func toggleBookmarkHandler(svc *service.BookmarkService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/bookmarks/{ngoId}")
		defer span.End()

		ids, on, err := svc.Toggle(ctx, SessionFromContext(ctx), chi.URLParam(r, "ngoId"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		resp := newBookmarksResponse(ids)
		resp.Bookmarked = &on
		writeJSON(w, http.StatusOK, resp)
	}
}

func clearBookmarksHandler(svc *service.BookmarkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/bookmarks")
		defer span.End()

		svc.Clear(ctx, SessionFromContext(ctx))
		w.WriteHeader(http.StatusNoContent)
	}
}

func compareBookmarksHandler(svc *service.BookmarkService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bookmarks/compare")
		defer span.End()

		entries, err := svc.Compare(ctx, SessionFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": entries})
	}
}
