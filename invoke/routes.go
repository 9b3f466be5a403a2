package invoke

import (
	"net/http"

	"github.com/pysugar/invoker/fc"
)

type routeOptions struct {
	initializer   bool
	invocationLog bool
}

type RouteOption func(*routeOptions)

// WithInitializer also answers POST /initialize.
func WithInitializer(enabled bool) RouteOption {
	return func(o *routeOptions) {
		o.initializer = enabled
	}
}

// WithInvocationLog writes the FC Invoke/Initialize Start and End lines around every call.
func WithInvocationLog(enabled bool) RouteOption {
	return func(o *routeOptions) {
		o.invocationLog = enabled
	}
}

// NewMux builds the route table. Unmatched requests get the ServeMux defaults:
// 405 for a known path with another method, 404 for anything else.
func NewMux(opts ...RouteOption) http.Handler {
	o := &routeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	invokeHandler, initializeHandler := http.HandlerFunc(InvokeHandler), http.HandlerFunc(InitializeHandler)
	if o.invocationLog {
		invokeHandler = withRequestLog(invokeHandler, fc.LogInvokeStart, fc.LogInvokeEnd)
		initializeHandler = withRequestLog(initializeHandler, fc.LogInitStart, fc.LogInitEnd)
	}

	mux := http.NewServeMux()
	mux.Handle(InvokePattern, invokeHandler)
	if o.initializer {
		mux.Handle(InitializePattern, initializeHandler)
	}
	return fc.Middleware(mux)
}
