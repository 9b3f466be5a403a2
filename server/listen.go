package server

import (
	"context"
	"log"
	"net"

	"github.com/pires/go-proxyproto"
	"github.com/pysugar/invoker/errors"
)

// Listen opens the TCP listener described by cfg. Failures wrap errors.ErrBind.
func Listen(ctx context.Context, cfg Config) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.Address())
	if err != nil {
		return nil, errors.Single(errors.ErrBind, err)
	}
	return ln, nil
}

// WrapProxyProtocol reads a PROXY header, when present, before handing out connections.
func WrapProxyProtocol(ln net.Listener, cfg Config) net.Listener {
	return &proxyproto.Listener{
		Listener:          ln,
		ReadHeaderTimeout: cfg.ProxyHeaderTimeout,
		ValidateHeader: func(header *proxyproto.Header) error {
			if cfg.Verbose {
				log.Printf("proxy header: %s -> %s", header.SourceAddr, header.DestinationAddr)
			}
			return nil
		},
		Policy: func(upstream net.Addr) (proxyproto.Policy, error) {
			return proxyproto.USE, nil
		},
	}
}
