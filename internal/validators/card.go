package validators

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/models"
)

// FieldCardNumber targets the card number of a lookup request.
const FieldCardNumber = "card_no"

// CardLookupValidator checks inbound card lookup requests before any
// outbound call is made.
//
// The card number is an opaque string: no length, checksum or character-set
// rules are applied. Only its presence is required.
type CardLookupValidator struct {
}

// NewCardLookupValidator returns a [Validator] for [models.CardLookupRequest].
func NewCardLookupValidator() Validator {
	return &CardLookupValidator{}
}

// Validate accepts models.CardLookupRequest by value or pointer.
// Any other type yields ErrUnsupportedType.
func (v *CardLookupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CardLookupRequest:
		return v.validateCardLookupRequest(ctx, value, fields...)
	case *models.CardLookupRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCardLookupRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CardLookupValidator) validateCardLookupRequest(_ context.Context, request models.CardLookupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCardNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldCardNumber:
			if request.CardNo == "" {
				return ErrEmptyCardNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
