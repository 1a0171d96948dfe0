package handler

import (
	"github.com/MKhiriev/nfc-card-relay/internal/config"
	"github.com/MKhiriev/nfc-card-relay/internal/handler/http"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/MKhiriev/nfc-card-relay/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers. gatherer backs the /metrics
// endpoint and may be nil.
func NewHandlers(services *service.Services, m *metrics.Metrics, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.CardValidationService == nil {
		return nil, errServicesNotInitialized
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, gatherer, cfg, logger),
	}, nil
}
