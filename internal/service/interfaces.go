// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the relay's business logic: turning one card number
// into one normalized [models.Verdict].
//
// The core implementation is wrapped by decorators that add input validation
// and metrics; [NewServices] assembles the chain.
package service

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/card_validation_service_mock.go -package=mock

// CardValidationService validates a card number against the external
// validation service.
type CardValidationService interface {
	// ValidateCard looks cardNo up exactly once and returns the normalized
	// verdict. The only error it returns is ErrCardNumberRequired (possibly
	// wrapped) for an empty cardNo; every upstream failure is a verdict.
	ValidateCard(ctx context.Context, cardNo string) (models.Verdict, error)
}

// CardValidationServiceWrapper defines middleware composition for
// CardValidationService. Implementations wrap an existing service to add
// behavior such as validating or metrics.
type CardValidationServiceWrapper interface {
	Wrap(CardValidationService) CardValidationService // returns a decorated CardValidationService applying additional behavior
}
