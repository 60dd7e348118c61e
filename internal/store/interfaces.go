package store

import (
	"context"

	"github.com/MKhiriev/go-notes-server/models"
)

// UserRepository is the persistence abstraction for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists when the username
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteRepository is the persistence abstraction for note records.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// NoteID and CreatedAt populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// GetAllNotes returns every note joined with its author's username,
	// ordered by creation time descending.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// DeleteNote atomically deletes the note with the given id and returns a
	// snapshot of the deleted record (including the author's username).
	// Returns ErrNoteNotFound when the note does not exist, including when a
	// concurrent caller deleted it first.
	DeleteNote(ctx context.Context, noteID int64) (models.Note, error)
}
