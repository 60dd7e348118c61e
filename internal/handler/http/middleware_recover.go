package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/utils"
	"github.com/MKhiriev/go-notes-server/models"
)

// withRecover converts a panicking handler into a 500 error envelope.
//
// The panic value and stack context are logged with the request-scoped
// logger; the caller receives the uniform envelope instead of a raw stack
// trace. This is the last-resort fallback of the error taxonomy — expected
// failure paths are mapped to typed errors long before reaching here.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Str("method", r.Method).
					Msg("panic recovered during request handling")

				utils.WriteJSON(w,
					models.ErrorResponse(fmt.Sprintf("internal error: %v", rec)),
					http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
