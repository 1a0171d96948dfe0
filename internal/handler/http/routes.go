package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/", h.liveness)

	// an absent card number is served by the same handler and rejected there
	router.Get("/api/validate-card", h.validateCard)
	router.Get("/api/validate-card/", h.validateCard)
	router.Get("/api/validate-card/{card_no}", h.validateCard)

	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
