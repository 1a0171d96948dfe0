// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// VerdictKind classifies a normalized verdict. It is used for logging and
// metric labels; it is not part of the JSON body.
type VerdictKind string

const (
	VerdictValid         VerdictKind = "valid"
	VerdictNotFound      VerdictKind = "not_found"
	VerdictUpstreamError VerdictKind = "upstream_error"
	VerdictUnreachable   VerdictKind = "unreachable"
)

// Verdict is the normalized answer returned to the inbound caller.
//
// Only the fields relevant to Kind are populated, so the JSON body takes one
// of the documented shapes:
//
//	{"valid": true, "data": {...}}
//	{"valid": false, "message": "..."}
//	{"message": "...", "error": ...}
//	{"message": "..."}
type Verdict struct {
	// StatusCode is the HTTP status the verdict is served with.
	StatusCode int `json:"-"`

	// Kind classifies the verdict.
	Kind VerdictKind `json:"-"`

	// Valid is set for valid and not-found verdicts only.
	Valid *bool `json:"valid,omitempty"`

	// Data is the first item record of a valid verdict, passed through verbatim.
	Data json.RawMessage `json:"data,omitempty"`

	// Message is a human-readable explanation for non-valid verdicts.
	Message string `json:"message,omitempty"`

	// Error is the upstream error payload (or failure message) of an
	// upstream-error verdict.
	Error json.RawMessage `json:"error,omitempty"`
}
