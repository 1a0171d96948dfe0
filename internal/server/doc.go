// Package server wires and runs the relay's HTTP server.
//
// It binds the listening socket, serves the router built by the handler
// package, and on SIGINT, SIGTERM or SIGQUIT drains in-flight requests
// within the configured shutdown timeout.
package server
