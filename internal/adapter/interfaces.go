// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of the relay: the client of the
// third-party card validation service.
//
// The primary abstraction is [CardLookupAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPCardLookupAdapter]) built on resty.
//
// Failures are never returned as errors: every way a lookup can end is
// reported as a tagged [models.UpstreamResult], mapped from the HTTP response
// by mapUpstreamResponse.
package adapter

import (
	"context"

	"github.com/MKhiriev/nfc-card-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/card_lookup_adapter_mock.go -package=mock

// CardLookupAdapter performs a single authenticated lookup of a card number
// against the external validation service.
type CardLookupAdapter interface {
	// LookupCard issues one request for cardNo and returns its outcome.
	// It never retries and never panics on upstream misbehaviour.
	LookupCard(ctx context.Context, cardNo string) models.UpstreamResult
}
