package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid external API settings
	// (for example, a missing URL or credentials).
	ErrInvalidAdapterConfigs = errors.New("invalid external API configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not recognise.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
