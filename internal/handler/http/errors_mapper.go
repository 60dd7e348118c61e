package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/service"
	"github.com/MKhiriev/go-notes-server/internal/store"
	"github.com/MKhiriev/go-notes-server/internal/utils"
	"github.com/MKhiriev/go-notes-server/internal/validators"
	"github.com/MKhiriev/go-notes-server/models"
)

// Default response messages attached to error envelopes.
const (
	msgInvalidData         = "Invalid data provided."
	msgInvalidRegistration = "Invalid registration data."
	msgNoCredentials       = "Authentication credentials were not provided."
	msgInvalidToken        = "Given token is invalid or expired."
	msgWrongCredentials    = "Invalid username or password."
	msgDeleteForbidden     = "Only administrators can delete notes."
	msgForbidden           = "You do not have permission to perform this action."
	msgNoteNotFound        = "Note not found."
)

// mapError converts a failure from the service or store layer into the
// (httpStatus, envelope) pair of the uniform response contract.
//
// The taxonomy is resolved in order: validation failures (with their
// field-level errors map), authentication failures, authorization failures,
// missing resources. Anything unmatched is a genuinely unexpected internal
// failure and is surfaced as a 500 envelope carrying the failure's message —
// a deliberate last-resort fallback, never the primary path.
func mapError(err error) (int, models.Response) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, models.ValidationErrorResponse(msgInvalidData, verr.Fields)
	}

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return http.StatusBadRequest, models.ErrorResponse(msgInvalidData)
	case errors.Is(err, service.ErrWrongCredentials):
		return http.StatusUnauthorized, models.ErrorResponse(msgWrongCredentials)
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, models.ErrorResponse(msgInvalidToken)
	case errors.Is(err, service.ErrDeleteForbidden):
		return http.StatusForbidden, models.ErrorResponse(msgDeleteForbidden)
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, models.ErrorResponse(msgForbidden)
	case errors.Is(err, store.ErrNoteNotFound):
		return http.StatusNotFound, models.ErrorResponse(msgNoteNotFound)
	default:
		return http.StatusInternalServerError, models.ErrorResponse(err.Error())
	}
}

// writeError maps err through [mapError] and writes the resulting envelope.
// Unexpected (5xx) failures are additionally logged with full context.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, response := mapError(err)

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("unexpected error occurred during request handling")
	}

	utils.WriteJSON(w, response, status)
}
