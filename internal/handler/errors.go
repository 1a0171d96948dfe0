// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errServicesNotInitialized is returned by NewHandlers when it is given no
// card validation service to delegate to. This is a fatal misconfiguration
// and causes the application to fail at startup.
var errServicesNotInitialized = errors.New("services are not initialized")
