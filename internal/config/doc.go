// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources; mergo fills every field
// still empty after the earlier sources, so the first non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging and the result is validated. The main
// entry point is [GetStructuredConfig].
package config
