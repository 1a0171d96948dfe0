package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/nfc-card-relay/internal/config"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener
}

func newHTTPServer(handler http.Handler, cfg config.Server) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// listen binds the configured address. It is separate from RunServer so
// that an occupied port is reported before the server is announced.
func (h *httpServer) listen() error {
	if h.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrListen, h.server.Addr, err)
	}
	h.listener = ln
	return nil
}

// addr returns the bound address, or the configured one before listen.
func (h *httpServer) addr() string {
	if h.listener == nil {
		return h.server.Addr
	}
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer() error {
	if err := h.listen(); err != nil {
		return err
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", ErrServe, err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	return nil
}
