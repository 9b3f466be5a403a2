// Package fc carries the per-request context the function platform attaches
// to every call it forwards to the worker.
package fc

import (
	"context"
	"net/http"
)

const (
	HeaderRequestID       = "x-fc-request-id"
	HeaderAccessKeyID     = "x-fc-access-key-id"
	HeaderAccessKeySecret = "x-fc-access-key-secret"
	HeaderSecurityToken   = "x-fc-security-token"
	HeaderHandler         = "x-fc-function-handler"
	HeaderInitializer     = "x-fc-function-initializer"
	HeaderControlPath     = "x-fc-control-path"
)

// Context is what the platform tells the worker about one invocation.
// Every field is optional.
type Context struct {
	RequestID       string
	AccessKeyID     string
	AccessKeySecret string
	SecurityToken   string
	Handler         string
	Initializer     string
	ControlPath     string
}

func FromRequest(r *http.Request) *Context {
	h := r.Header
	return &Context{
		RequestID:       h.Get(HeaderRequestID),
		AccessKeyID:     h.Get(HeaderAccessKeyID),
		AccessKeySecret: h.Get(HeaderAccessKeySecret),
		SecurityToken:   h.Get(HeaderSecurityToken),
		Handler:         h.Get(HeaderHandler),
		Initializer:     h.Get(HeaderInitializer),
		ControlPath:     h.Get(HeaderControlPath),
	}
}

type contextKey struct {
	name string
}

var fcCtxKey = &contextKey{"fc"}

func NewContext(ctx context.Context, fcCtx *Context) context.Context {
	return context.WithValue(ctx, fcCtxKey, fcCtx)
}

// FromContext never returns nil.
func FromContext(ctx context.Context) *Context {
	if fcCtx, ok := ctx.Value(fcCtxKey).(*Context); ok && fcCtx != nil {
		return fcCtx
	}
	return &Context{}
}

// IsSensitiveHeader reports whether a header carries platform credentials.
func IsSensitiveHeader(name string) bool {
	switch http.CanonicalHeaderKey(name) {
	case http.CanonicalHeaderKey(HeaderAccessKeySecret), http.CanonicalHeaderKey(HeaderSecurityToken):
		return true
	}
	return false
}

// Middleware attaches the platform context to every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), FromRequest(r))))
	})
}
