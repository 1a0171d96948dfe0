// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment according to the `env`
// tags on [StructuredConfig]. Unset variables leave their fields zero so the
// other sources and applyDefaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("reading relay settings from environment: %w", err)
	}

	return nil
}
