// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// applyDefaults fills optional settings left empty by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = DefaultAllowedOrigins
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The external API URL, username and password are
// mandatory; the relay must not start without them.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	if cfg.Adapter.URL == "" {
		missing = append(missing, "EXTERNAL_API_URL")
	}
	if cfg.Adapter.Username == "" {
		missing = append(missing, "EXTERNAL_API_USERNAME")
	}
	if cfg.Adapter.Password == "" {
		missing = append(missing, "EXTERNAL_API_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidAdapterConfigs, strings.Join(missing, ", "))
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	return nil
}
