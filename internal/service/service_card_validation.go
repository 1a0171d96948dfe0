package service

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/internal/adapter"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/models"
)

type cardValidationService struct {
	adapter adapter.CardLookupAdapter

	logger *logger.Logger
}

// NewCardValidationService returns the core [CardValidationService]. It does
// not validate its input; wrap it with [NewCardValidationValidationService].
func NewCardValidationService(adapter adapter.CardLookupAdapter, logger *logger.Logger) CardValidationService {
	return &cardValidationService{
		adapter: adapter,
		logger:  logger,
	}
}

func (c *cardValidationService) ValidateCard(ctx context.Context, cardNo string) (models.Verdict, error) {
	result := c.adapter.LookupCard(ctx, cardNo)
	verdict := Normalize(result)

	logger.FromContextOr(ctx, c.logger).Debug().
		Str("card_no", cardNo).
		Str("upstream_outcome", result.Outcome.String()).
		Str("verdict", string(verdict.Kind)).
		Int("status", verdict.StatusCode).
		Msg("card validation verdict")

	return verdict, nil
}
