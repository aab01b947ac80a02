// Package server serves a directory tree over HTTP, one connection at a time.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/net/netutil"

	"github.com/Kush-Singh-26/wasmserve/internal/config"
	"github.com/Kush-Singh-26/wasmserve/internal/metrics"
)

// Server is a static file server bound to a single directory.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.ServeMetrics
	handler http.Handler

	// Out receives the startup announcement (default: os.Stdout).
	Out io.Writer
}

// New builds a server for fsys. cfg must not be modified afterwards.
func New(cfg *config.Config, fsys afero.Fs, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, errors.New("nil filesystem")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewServeMetrics(),
		Out:     os.Stdout,
	}

	fileServer := http.FileServer(afero.NewHttpFs(fsys))
	table := NewMIMETable(cfg.MIMETypes)
	s.handler = accessLogHandler(logger, s.metrics,
		gzipHandler(
			contentTypeHandler(table, fileServer)))

	return s, nil
}

// Handler returns the full request handler chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the counters fed by every response.
func (s *Server) Metrics() *metrics.ServeMetrics {
	return s.metrics
}

// Listen binds the configured address with address reuse enabled. The
// returned listener hands out one connection at a time; the next Accept
// blocks until the previous connection is closed.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	addr := s.cfg.Addr()
	lc := net.ListenConfig{Control: reuseAddr}
	l, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", addr, err)
	}
	return netutil.LimitListener(l, 1), nil
}

// Serve announces the port and handles connections on l until ctx is
// cancelled. Cancellation closes the listener and any open connection
// without draining; Serve then returns nil.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	httpServer := &http.Server{
		Handler:  s.handler,
		ErrorLog: slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	// One request per connection.
	httpServer.SetKeepAlivesEnabled(false)

	stop := context.AfterFunc(ctx, func() {
		if err := httpServer.Close(); err != nil {
			s.logger.Warn("Failed to close HTTP server", "error", err)
		}
	})
	defer stop()

	port := s.cfg.Port
	if tcpAddr, ok := l.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	_, _ = fmt.Fprintf(s.Out, "serving at port %d\n", port)

	if err := httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := s.Listen(ctx)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}
