package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/utils"
	"github.com/MKhiriev/go-notes-server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated principal in context")
		utils.WriteJSON(w, models.ErrorResponse(msgNoCredentials), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, principal)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse("Notes retrieved successfully.", notes), http.StatusOK)
}

// createNoteRequest is the body of a note creation call.
type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated principal in context")
		utils.WriteJSON(w, models.ErrorResponse(msgNoCredentials), http.StatusUnauthorized)
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgInvalidData), http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(ctx, principal, models.Note{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse("Note created successfully.", createdNote), http.StatusCreated)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated principal in context")
		utils.WriteJSON(w, models.ErrorResponse(msgNoCredentials), http.StatusUnauthorized)
		return
	}

	// A non-numeric id cannot address any note; this mirrors route-level
	// matching, so it resolves before the service's authorization check.
	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn().Str("id", chi.URLParam(r, "id")).Msg("non-numeric note id in delete request")
		utils.WriteJSON(w, models.ErrorResponse(msgNoteNotFound), http.StatusNotFound)
		return
	}

	deletedNote, err := h.services.NoteService.DeleteNote(ctx, principal, noteID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(
		fmt.Sprintf("Note '%s', by: '%s' has been deleted successfully.", deletedNote.Title, deletedNote.AuthorUsername),
		map[string]models.DeletedNote{
			"deleted_note": {
				ID:     deletedNote.NoteID,
				Title:  deletedNote.Title,
				Author: deletedNote.AuthorUsername,
			},
		},
	), http.StatusOK)
}
