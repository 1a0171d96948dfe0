package http

import (
	"github.com/MKhiriev/nfc-card-relay/internal/config"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/MKhiriev/nfc-card-relay/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	cfg    config.Server
	logger *logger.Logger
}

// NewHandler creates the HTTP handler. m and gatherer may be nil, in which
// case endpoint latency is not recorded and /metrics is not served.
func NewHandler(services *service.Services, m *metrics.Metrics, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		gatherer: gatherer,
		cfg:      cfg,
		logger:   logger,
	}
}
