package extensions

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// NewH2CHandler serves h over HTTP/1.1 and cleartext HTTP/2, both prior knowledge and Upgrade.
// Pass the h2s given to http2.ConfigureServer so Shutdown reaches the hijacked HTTP/2 connections.
func NewH2CHandler(h http.Handler, h2s *http2.Server) http.Handler {
	return h2c.NewHandler(h, h2s)
}
