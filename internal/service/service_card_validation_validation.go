package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nfc-card-relay/internal/validators"
	"github.com/MKhiriev/nfc-card-relay/models"
)

// CardValidationValidationService rejects malformed lookup requests before
// they reach the wrapped service.
type CardValidationValidationService struct {
	inner     CardValidationService
	validator validators.Validator
}

func NewCardValidationValidationService() CardValidationServiceWrapper {
	return &CardValidationValidationService{
		validator: validators.NewCardLookupValidator(),
	}
}

func (v *CardValidationValidationService) ValidateCard(ctx context.Context, cardNo string) (models.Verdict, error) {
	request := models.CardLookupRequest{CardNo: cardNo}
	if err := v.validator.Validate(ctx, request, validators.FieldCardNumber); err != nil {
		if errors.Is(err, validators.ErrEmptyCardNumber) {
			return models.Verdict{}, fmt.Errorf("error during card lookup request validation: %w", ErrCardNumberRequired)
		}
		return models.Verdict{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ValidateCard(ctx, cardNo)
}

func (v *CardValidationValidationService) Wrap(wrapper CardValidationService) CardValidationService {
	v.inner = wrapper
	return v
}
