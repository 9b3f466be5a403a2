// Package server runs the function worker's HTTP listener.
package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/pysugar/invoker/errors"
	"github.com/pysugar/invoker/fc"
	"github.com/pysugar/invoker/http/extensions"
	"github.com/pysugar/invoker/invoke"
	"golang.org/x/net/http2"
	"golang.org/x/sync/errgroup"
)

// Start binds cfg's address and serves until ctx is done.
// It only returns on a bind failure, a serve failure, or cancellation.
func Start(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ln, err := Listen(ctx, cfg)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, cfg)
}

// Serve answers the invocation routes on ln until ctx is done, then shuts down.
// ln is closed on return.
func Serve(ctx context.Context, ln net.Listener, cfg Config) error {
	if cfg.ProxyProtocol {
		ln = WrapProxyProtocol(ln, cfg)
	}

	srv := &http.Server{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	h2s := &http2.Server{}
	if cfg.H2C {
		// Registers h2s on srv's shutdown hooks so hijacked h2c connections receive GOAWAY.
		if err := http2.ConfigureServer(srv, h2s); err != nil {
			ln.Close()
			return err
		}
	}
	srv.Handler = NewHandler(cfg, h2s)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		// Shutdown waits for HTTP/1 connections only; h2c connections are hijacked and
		// drain on their own after the GOAWAY.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
			return srv.Close()
		}
		return nil
	})

	log.Printf("Server is serving on %s", ln.Addr())
	fc.LogRuntimeStarted()

	return g.Wait()
}

// NewHandler assembles the route table and the middleware cfg asks for.
// h2s is only used when cfg.H2C is set.
func NewHandler(cfg Config, h2s *http2.Server) http.Handler {
	var h http.Handler = invoke.NewMux(
		invoke.WithInitializer(cfg.EnableInitializer),
		invoke.WithInvocationLog(cfg.Verbose),
	)
	if cfg.Verbose {
		h = extensions.LoggingMiddleware(h)
	}
	if cfg.H2C {
		h = extensions.NewH2CHandler(h, h2s)
	}
	return h
}
