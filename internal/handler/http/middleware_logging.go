package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// withLogging writes one access log entry per request. It must run after
// withTraceID so the entry carries the trace id.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Error()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
