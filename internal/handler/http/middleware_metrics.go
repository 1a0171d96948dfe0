package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that no route matched, so that arbitrary
// paths do not become label values.
const unmatchedRoute = "unmatched"

// withMetrics records the latency of every request by its route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		if h.metrics == nil {
			return
		}

		endpoint := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		h.metrics.ObserveEndpointLatency(endpoint, time.Since(start).Seconds())
	})
}
