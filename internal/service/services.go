package service

import (
	"github.com/MKhiriev/nfc-card-relay/internal/adapter"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
)

type Services struct {
	CardValidationService CardValidationService
}

// NewServices builds the service chain: validation, then metrics, then the
// core lookup against cardAdapter.
func NewServices(cardAdapter adapter.CardLookupAdapter, m *metrics.Metrics, logger *logger.Logger) *Services {
	core := NewCardValidationService(cardAdapter, logger)
	withMetrics := NewCardValidationMetricsService(m).Wrap(core)

	return &Services{
		CardValidationService: NewCardValidationValidationService().Wrap(withMetrics),
	}
}
