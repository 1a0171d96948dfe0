package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/MKhiriev/nfc-card-relay/models"
)

type metricsCardLookupAdapter struct {
	inner   CardLookupAdapter
	metrics *metrics.Metrics
}

// WithMetrics decorates inner so that every lookup records its latency by
// outcome and, when a response was received, its HTTP status.
func WithMetrics(inner CardLookupAdapter, m *metrics.Metrics) CardLookupAdapter {
	return &metricsCardLookupAdapter{
		inner:   inner,
		metrics: m,
	}
}

func (a *metricsCardLookupAdapter) LookupCard(ctx context.Context, cardNo string) models.UpstreamResult {
	start := time.Now()
	result := a.inner.LookupCard(ctx, cardNo)

	a.metrics.ObserveUpstreamDuration(result.Outcome.String(), time.Since(start).Seconds())
	if result.Outcome != models.UpstreamUnreachable {
		a.metrics.RecordUpstreamResponse(result.StatusCode)
	}

	return result
}
