// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// Defaults applied after all sources have been merged.
const (
	DefaultPort            = 3001
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "debug"
)

// DefaultAllowedOrigins allows cross-origin requests from any origin.
var DefaultAllowedOrigins = []string{"*"}

// StructuredConfig is the top-level configuration container for the relay.
// It is populated once at startup by merging values from environment
// variables, command-line flags, and an optional JSON file, and is treated as
// immutable afterwards: constructors receive the sub-configs by value.
//
// The environment variable names are kept flat (no prefixes) so existing
// deployments keep working.
type StructuredConfig struct {
	// Server holds the inbound HTTP listener settings.
	Server Server

	// Adapter holds the location and credentials of the external card
	// validation service.
	Adapter Adapter

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: LOG_LEVEL. Defaults to "debug".
	LogLevel string `env:"LOG_LEVEL"`

	// TraceSpans installs an OpenTelemetry tracer provider that writes every
	// finished span to the log. Env: TRACE_SPANS.
	TraceSpans bool `env:"TRACE_SPANS"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds settings of the inbound HTTP listener.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT. Defaults to 3001.
	Port int `env:"PORT"`

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	// Env: CORS_ALLOWED_ORIGINS (comma separated). Defaults to "*".
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT. Defaults to 5s.
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the listen address in ":port" form.
func (s Server) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

// Adapter holds configuration of the external card validation service.
type Adapter struct {
	// URL is the base URL the url-encoded card number is appended to,
	// e.g. "https://api.example.com/cards?card_no=".
	// Env: EXTERNAL_API_URL. Required.
	URL string `env:"EXTERNAL_API_URL"`

	// Username is the HTTP Basic auth user.
	// Env: EXTERNAL_API_USERNAME. Required.
	Username string `env:"EXTERNAL_API_USERNAME"`

	// Password is the HTTP Basic auth password. Never serialized.
	// Env: EXTERNAL_API_PASSWORD. Required.
	Password string `env:"EXTERNAL_API_PASSWORD" json:"-"`

	// RequestTimeout bounds a single outbound lookup. Zero leaves the
	// transport default (no timeout) in place.
	// Env: EXTERNAL_API_TIMEOUT
	RequestTimeout time.Duration `env:"EXTERNAL_API_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the relay
// configuration from all available sources in the following priority order
// (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
