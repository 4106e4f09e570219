package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/cartolafc/cartola"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
)

func getRouter(api cartola.API, registry *prometheus.Registry, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Each request may do several attempts against the service.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Method("GET", "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/market", marketHandler(api, render))
	r.Get("/teams/{slug}/partial", partialTeamHandler(api, render))

	return r
}
