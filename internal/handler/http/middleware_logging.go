package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-server/internal/logger"
)

// withLogging observes every request as a scoped span: one entry event when
// the request arrives and one exit event with status, size, and duration when
// the downstream handler returns. Logging never alters the handler outcome.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Debug().
			Str("uri", uri).
			Str("method", method).
			Msg("request started")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
