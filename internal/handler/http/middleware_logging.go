package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request once the handler
// returns. Responses with a 5xx status are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		event := accessLogEvent(logger.FromRequest(r), rw.statusCode())
		if route := chi.RouteContext(r.Context()); route != nil && route.RoutePattern() != "" {
			event = event.Str("route", route.RoutePattern())
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rw.statusCode()).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	if status >= http.StatusInternalServerError {
		return log.Error()
	}

	return log.Info()
}
