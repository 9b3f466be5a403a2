// Package invoke holds the route table of the function worker.
package invoke

import (
	"log"
	"net/http"

	"github.com/pysugar/invoker/fc"
)

const (
	// Acknowledgment is written verbatim for every invocation.
	Acknowledgment = "Rust demo function invoked."

	InvokePattern     = "POST /invoke"
	InitializePattern = "POST /initialize"
)

func InvokeHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte(Acknowledgment)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func InitializeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// withRequestLog brackets next with the platform's start/end lines for the request id.
func withRequestLog(next http.HandlerFunc, start, end func(requestID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := fc.FromContext(r.Context()).RequestID
		start(rid)
		next(w, r)
		end(rid)
	}
}
