package httpapi

import (
	"log"
	"net/http"
	"time"
)

// loggingWriter captures what a handler wrote so the access log line can be
// emitted after the fact.
type loggingWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *loggingWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggingWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

// RequestLogger writes one access-log line per request. The caller address
// is included so traffic from the public site can be traced alongside the
// visit counter.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		lw := &loggingWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %s -> %d (%dB, %s)",
			resolveClientIP(r), r.Method, r.URL.Path, status, lw.written, time.Since(started).Round(time.Millisecond))
	})
}
