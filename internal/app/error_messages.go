// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's service layer and HTTP handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API; clients match on some of them verbatim.
package app

const (
	// MsgCardNumberRequired is returned when the request carries no card number.
	MsgCardNumberRequired = "Card number is required."

	// MsgCardNumberMalformed is returned when the card number in the request
	// path is not a valid percent-encoded string.
	MsgCardNumberMalformed = "Card number is not properly encoded."

	// MsgCardNotFound is returned when the validation service answers with
	// an empty item collection.
	MsgCardNotFound = "Invalid Card or Card Not Found"

	// MsgCardNotFoundAPI404 is returned when the validation service itself
	// answers 404 Not Found.
	MsgCardNotFoundAPI404 = "Invalid Card or Card Not Found (API 404)"

	// MsgUpstreamValidationFailed is returned when the validation service
	// answers with any other non-success status.
	MsgUpstreamValidationFailed = "Failed to validate card with external service."

	// MsgUpstreamUnreachable is returned when no response could be obtained
	// from the validation service.
	MsgUpstreamUnreachable = "Failed to connect to external card validation service."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServerIsRunning is the liveness text served on GET /.
	MsgServerIsRunning = "NFC Auth Backend Server is running!"
)
