package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the relay's command-line flags from args (without the
// program name).
//
// Flags:
//
//	-p port to listen on
//	-url external validation API base URL
//	-username external validation API user
//	-timeout external validation API request timeout (e.g., "10s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-log-level minimum log level (e.g., "info")
//	-trace-spans log finished OpenTelemetry spans
//	-c/-config json file path with configs
//
// The password has no flag: command lines are visible in process listings.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var externalURL string
	var username string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string
	var traceSpans bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("nfc-card-relay", flag.ContinueOnError)
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&externalURL, "url", "", "External validation API base URL")
	fs.StringVar(&username, "username", "", "External validation API username")
	fs.DurationVar(&requestTimeout, "timeout", 0, "External API request timeout (e.g., 10s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	fs.BoolVar(&traceSpans, "trace-spans", false, "Log finished OpenTelemetry spans")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			URL:            externalURL,
			Username:       username,
			RequestTimeout: requestTimeout,
		},
		LogLevel:     logLevel,
		TraceSpans:   traceSpans,
		JSONFilePath: jsonConfigPath,
	}, nil
}
