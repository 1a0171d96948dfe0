// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for requests entering the
// relay, kept apart from the transport and service layers.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Implement Validator to encode request-specific rules.
//  2. Inject Validator implementations into service wrappers.
//  3. Call Validate with context, value, and optional field names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
