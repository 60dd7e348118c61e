package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-server/internal/authz"
	"github.com/MKhiriev/go-notes-server/internal/logger"
	"github.com/MKhiriev/go-notes-server/internal/store"
	"github.com/MKhiriev/go-notes-server/internal/validators"
	"github.com/MKhiriev/go-notes-server/models"
)

// noteService is the concrete implementation of NoteService. It consults the
// authz policy before touching the repository and validates inbound payloads
// before persistence.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// ListNotes returns every note ordered by creation time descending. Listing
// is unscoped: any authenticated principal sees all notes.
func (n *noteService) ListNotes(ctx context.Context, principal models.User) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if !authz.CanListNotes(principal) {
		log.Warn().Int64("user_id", principal.UserID).Msg("unauthorized list attempt")
		return nil, ErrForbidden
	}

	notes, err := n.noteRepository.GetAllNotes(ctx)
	if err != nil {
		log.Err(err).Msg("failed to retrieve notes")
		return nil, fmt.Errorf("failed to retrieve notes: %w", err)
	}

	log.Info().Int("count", len(notes)).Str("username", principal.Username).Msg("notes retrieved")

	return notes, nil
}

// CreateNote validates the payload and persists a note authored by principal.
// The author is always the requesting principal: it cannot be supplied by the
// payload and is never reassignable afterwards.
func (n *noteService) CreateNote(ctx context.Context, principal models.User, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !authz.CanCreateNote(principal) {
		log.Warn().Int64("user_id", principal.UserID).Msg("unauthorized create attempt")
		return models.Note{}, ErrForbidden
	}

	if err := validators.ValidateNote(note); err != nil {
		log.Warn().Err(err).Str("username", principal.Username).Msg("invalid note creation attempt")
		return models.Note{}, err
	}

	note.AuthorID = principal.UserID
	note.AuthorUsername = principal.Username

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("username", principal.Username).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	log.Info().
		Int64("id", createdNote.NoteID).
		Str("title", createdNote.Title).
		Str("author", principal.Username).
		Msg("note created successfully")

	return createdNote, nil
}

// DeleteNote deletes a note on behalf of principal and returns a snapshot of
// the deleted record.
//
// Authorization is checked before existence: a non-elevated principal
// receives ErrDeleteForbidden without the note ever being looked up, so an
// unauthorized caller cannot probe which note ids exist.
func (n *noteService) DeleteNote(ctx context.Context, principal models.User, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !authz.CanDeleteNote(principal) {
		log.Warn().
			Int64("user_id", principal.UserID).
			Str("username", principal.Username).
			Msg("unauthorized delete attempt")
		return models.Note{}, ErrDeleteForbidden
	}

	deletedNote, err := n.noteRepository.DeleteNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			log.Warn().Int64("note_id", noteID).Str("admin", principal.Username).Msg("note not found for deletion")
			return models.Note{}, err
		}
		log.Err(err).Int64("note_id", noteID).Str("admin", principal.Username).Msg("note deletion ended with error")
		return models.Note{}, fmt.Errorf("note deletion ended with error: %w", err)
	}

	log.Info().
		Int64("id", deletedNote.NoteID).
		Str("title", deletedNote.Title).
		Str("author", deletedNote.AuthorUsername).
		Str("admin", principal.Username).
		Msg("note deleted successfully")

	return deletedNote, nil
}
