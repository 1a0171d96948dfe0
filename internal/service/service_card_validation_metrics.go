package service

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/MKhiriev/nfc-card-relay/models"
)

// CardValidationMetricsService counts the verdicts produced by the wrapped
// service. Rejected requests are not verdicts and are not counted.
type CardValidationMetricsService struct {
	inner   CardValidationService
	metrics *metrics.Metrics
}

func NewCardValidationMetricsService(m *metrics.Metrics) CardValidationServiceWrapper {
	return &CardValidationMetricsService{
		metrics: m,
	}
}

func (m *CardValidationMetricsService) ValidateCard(ctx context.Context, cardNo string) (models.Verdict, error) {
	verdict, err := m.inner.ValidateCard(ctx, cardNo)
	if err != nil {
		return verdict, err
	}

	m.metrics.RecordVerdict(string(verdict.Kind))
	return verdict, nil
}

func (m *CardValidationMetricsService) Wrap(wrapper CardValidationService) CardValidationService {
	m.inner = wrapper
	return m
}
