package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/utils"
	"github.com/MKhiriev/go-notes-server/internal/validators"
	"github.com/MKhiriev/go-notes-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgInvalidRegistration), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		var verr *validators.ValidationError
		if errors.As(err, &verr) {
			log.Warn().Err(err).Msg("invalid user registration attempt")
			utils.WriteJSON(w, models.ValidationErrorResponse(msgInvalidRegistration, verr.Fields), http.StatusBadRequest)
			return
		}
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(
		"User registered successfully.",
		models.RegisteredUser{ID: registeredUser.UserID, Username: registeredUser.Username},
	), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgInvalidData), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	tokenPair, err := h.services.AuthService.CreateTokenPair(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token pair failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse("Login successful.", tokenPair), http.StatusOK)
}

// refreshRequest is the body of a refresh call: the refresh token issued at
// login time.
type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgInvalidData), http.StatusBadRequest)
		return
	}

	accessToken, err := h.services.AuthService.RefreshToken(ctx, req.Refresh)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(
		"Access token refreshed successfully.",
		models.TokenPair{Access: accessToken.SignedString, Refresh: req.Refresh},
	), http.StatusOK)
}
