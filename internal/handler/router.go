package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services groups the use cases the router exposes.
type Services struct {
	Catalog    *service.CatalogService
	Views      *service.ViewService
	Sessions   *service.SessionService
	Bookmarks  *service.BookmarkService
	Grievances *service.GrievanceService
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svcs Services, allowedOrigins []string, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger, metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svcs.Catalog))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	requireSession := SessionAuthMiddleware(svcs.Sessions, logger)
	optionalSession := OptionalSessionMiddleware(svcs.Sessions, logger)
	lenientSession := LenientSessionMiddleware(svcs.Sessions, logger)

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Catalog
		r.Get("/ngos", listNGOsHandler(svcs.Catalog, logger))
		r.Get("/ngos/facets", ngoFacetsHandler(svcs.Catalog, logger))
		r.Get("/ngos/{ngoId}", getNGOHandler(svcs.Catalog, logger))
		r.Get("/ngos/{ngoId}/timeline", ngoTimelineHandler(svcs.Catalog, logger))
		r.Get("/ngos/{ngoId}/proofs", ngoProofsHandler(svcs.Catalog, logger))
		r.Get("/ngos/{ngoId}/report", ngoReportHandler(svcs.Catalog, logger))
		r.Get("/ngos/{ngoId}/grievances", listGrievancesHandler(svcs.Grievances, logger))
		r.Post("/ngos/{ngoId}/grievances", fileGrievanceHandler(svcs.Grievances, logger))
		r.Get("/ticker", tickerHandler(svcs.Catalog, logger))

		// Detail views. A signed-in visitor's account receives the donations.
		r.With(optionalSession).Post("/views", mountViewHandler(svcs.Views, logger))
		r.Get("/views/{viewId}", getViewHandler(svcs.Views, logger))
		r.Delete("/views/{viewId}", unmountViewHandler(svcs.Views, logger))
		r.Post("/views/{viewId}/donations", donateHandler(svcs.Views, logger))
		r.Get("/views/{viewId}/receipt", receiptHandler(svcs.Views, logger))

		// Auth
		r.With(lenientSession).Post("/auth/login", authLoginHandler(svcs.Sessions, logger))
		r.With(lenientSession).Post("/auth/signup", authSignupHandler(svcs.Sessions, logger))

		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Post("/auth/logout", authLogoutHandler(svcs.Sessions, logger))
			r.Get("/profile", profileHandler(svcs.Sessions, logger))

			r.Get("/bookmarks", listBookmarksHandler(svcs.Bookmarks))
			r.Delete("/bookmarks", clearBookmarksHandler(svcs.Bookmarks))
			r.Get("/bookmarks/compare", compareBookmarksHandler(svcs.Bookmarks, logger))
			r.Put("/bookmarks/{ngoId}", toggleBookmarkHandler(svcs.Bookmarks, logger))
		})
	})

	return r
}

// ============================================================
// Operational
// ============================================================

func healthzHandler(catalog *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := time.Now().Format(time.RFC3339)

		services := []domain.ServiceHealth{
			{Name: "donor-bfa", Status: "healthy", LastChecked: now},
		}

		status := "healthy"
		detail := ""
		orgs, err := catalog.List(ctx, domain.CatalogFilter{})
		switch {
		case err != nil:
			status, detail = "unhealthy", err.Error()
		case len(orgs) == 0:
			status, detail = "degraded", "catalog is empty"
		default:
			detail = strconv.Itoa(len(orgs)) + " organizations"
		}
		services = append(services, domain.ServiceHealth{
			Name: "catalog", Status: status, Detail: detail, LastChecked: now,
		})

		overallStatus := "healthy"
		for _, s := range services {
			if s.Status == "unhealthy" {
				overallStatus = "unhealthy"
				break
			}
			if s.Status == "degraded" {
				overallStatus = "degraded"
			}
		}

		code := http.StatusOK
		if overallStatus == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, domain.HealthStatus{
			Status:   overallStatus,
			Services: services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
