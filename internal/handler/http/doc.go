// Package http implements the inbound HTTP transport of the relay.
//
// It exposes route wiring, the card validation and liveness handlers, and
// the middleware chain (panic recovery, CORS, request tracing, access
// logging, latency metrics) that runs before requests are delegated to the
// service layer.
package http
