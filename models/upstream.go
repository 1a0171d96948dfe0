// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// UpstreamOutcome tags how a single call to the card validation service ended.
type UpstreamOutcome int

const (
	// UpstreamSucceeded means the service answered with a 2xx status.
	// Items holds the decoded record collection (possibly empty).
	UpstreamSucceeded UpstreamOutcome = iota + 1

	// UpstreamFailed means the service answered with a non-2xx status.
	// StatusCode, Payload and Message describe the failure.
	UpstreamFailed

	// UpstreamUnreachable means no HTTP response was obtained at all
	// (connection refused, DNS failure, timeout, TLS error).
	UpstreamUnreachable
)

// String returns the lower-case label of the outcome.
func (o UpstreamOutcome) String() string {
	switch o {
	case UpstreamSucceeded:
		return "succeeded"
	case UpstreamFailed:
		return "failed"
	case UpstreamUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// UpstreamResult is the value returned by the outbound adapter for one lookup.
// It replaces error-based signaling: every way the call can end is represented
// as data and consumed by explicit branching on Outcome.
type UpstreamResult struct {
	// Outcome is the tag of the result.
	Outcome UpstreamOutcome

	// StatusCode is the HTTP status returned by the service.
	// Zero when Outcome is UpstreamUnreachable.
	StatusCode int

	// Items holds the records from the `items` array of a successful response,
	// each kept verbatim.
	Items []json.RawMessage

	// Payload is the body of a failed response as JSON. JSON bodies are kept
	// verbatim, other bodies are encoded as a JSON string. Nil when the body
	// was empty.
	Payload json.RawMessage

	// Message is a human-readable description of the failure.
	Message string

	// Err is the transport error for UpstreamUnreachable results.
	// It is meant for logs and must never be sent to the caller.
	Err error
}

// LookupResponse is the body shape returned by the card validation service
// on success.
type LookupResponse struct {
	Items []json.RawMessage `json:"items"`
}
