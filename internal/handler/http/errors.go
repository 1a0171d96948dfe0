// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMalformedCardNumber is returned when the escaped card_no path segment
// cannot be percent-decoded.
var ErrMalformedCardNumber = errors.New("malformed card number in request path")
