package extensions

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pysugar/invoker/fc"
)

const redacted = "******"

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("< Received HTTP Request from %s: %s\n", ClientIP(r), FormatRequest(r))
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		log.Printf("Sending HTTP Response: %d %s, %d bytes\n%sCost: %v >\n",
			rec.status, http.StatusText(rec.status), rec.size, FormatResponseWriter(w), time.Since(start))
	})
}

// FormatRequest dumps the request line and headers. Platform credentials are masked.
func FormatRequest(r *http.Request) string {
	var buf bytes.Buffer
	writer := bufio.NewWriter(&buf)

	fmt.Fprintf(writer, "\n%s %s %s\r\n", r.Method, r.URL.RequestURI(), r.Proto)
	RedactHeader(r.Header).Write(writer)

	if r.RemoteAddr != "" {
		fmt.Fprintf(writer, "Remote-Addr: %s\r\n", r.RemoteAddr)
	}
	writer.Flush()
	return buf.String()
}

func FormatResponseWriter(w http.ResponseWriter) string {
	var buf bytes.Buffer
	writer := bufio.NewWriter(&buf)

	w.Header().Write(writer)

	writer.Flush()
	return buf.String()
}

// RedactHeader returns a copy of h with credential headers masked.
func RedactHeader(h http.Header) http.Header {
	out := h.Clone()
	for name := range out {
		if fc.IsSensitiveHeader(name) {
			out[name] = []string{redacted}
		}
	}
	return out
}
