// Package httptransport assembles the HTTP router: middleware chain, domain
// routes, health, and metrics. Business logic lives in the domain packages.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "hemobank/internal/auth/handler"
	donorHandler "hemobank/internal/donor/handler"
	hospitalHandler "hemobank/internal/hospital/handler"
	inventoryHandler "hemobank/internal/inventory/handler"
	"hemobank/internal/platform/metrics"
	"hemobank/internal/platform/middleware"
	"hemobank/internal/ratelimit"
	"hemobank/pkg/platform/httputil"
)

// Deps bundles everything the router mounts. RateLimit may be nil to run
// without request limits.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Donors    donorHandler.Service
	Hospitals hospitalHandler.Service
	Auth      authHandler.Service

	RateLimit *ratelimit.Middleware

	RequestTimeout time.Duration
}

// NewRouter builds the full route tree.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)

		// Writes are rate limited per client; reads are not.
		api.Group(func(limited chi.Router) {
			if deps.RateLimit != nil {
				limited.Use(deps.RateLimit.LimitWrites("donors"))
			}
			donorHandler.New(deps.Donors, deps.Logger).Register(limited)
		})

		api.Group(func(limited chi.Router) {
			if deps.RateLimit != nil {
				limited.Use(deps.RateLimit.LimitWrites("hospitals"))
			}
			hospitalHandler.New(deps.Hospitals, deps.Logger).Register(limited)
		})

		api.Group(func(limited chi.Router) {
			if deps.RateLimit != nil {
				limited.Use(deps.RateLimit.Limit("auth"))
			}
			authHandler.New(deps.Auth, deps.Logger).Register(limited)
		})

		inventoryHandler.New(deps.Donors, deps.Logger).Register(api)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
