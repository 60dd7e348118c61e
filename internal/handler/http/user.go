package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/utils"
	"github.com/MKhiriev/go-notes-server/models"
)

// currentUser returns the authenticated principal's identity and privilege
// flags. The is_admin field is computed live from the principal on every
// call, never cached.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated principal in context")
		utils.WriteJSON(w, models.ErrorResponse(msgNoCredentials), http.StatusUnauthorized)
		return
	}

	log.Debug().Str("username", principal.Username).Msg("user info retrieved")

	utils.WriteJSON(w, models.SuccessResponse(
		"User information retrieved successfully.",
		models.CurrentUser{
			ID:          principal.UserID,
			Username:    principal.Username,
			IsAdmin:     principal.IsAdmin(),
			IsStaff:     principal.IsStaff,
			IsSuperuser: principal.IsSuperuser,
		},
	), http.StatusOK)
}
