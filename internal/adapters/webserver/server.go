// Package webserver serves web builds for local play.
package webserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"runtime"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server implements ports.WebServer with a static file server.
type Server struct {
	logger ports.Logger
	goos   string
}

// NewServer creates a new Server.
func NewServer(logger ports.Logger) *Server {
	return &Server{logger: logger, goos: runtime.GOOS}
}

// Serve serves dir on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, dir, addr, page string) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "address", addr)
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		_ = listener.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "address", addr)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	s.logger.Info("Launching web server at " + domain.ServerURL(s.goos, host, port, page))

	srv := &http.Server{
		Handler:           http.FileServer(http.Dir(dir)),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
