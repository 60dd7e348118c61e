package service

import (
	"context"

	"github.com/MKhiriev/go-notes-server/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle. It is the principal-resolver boundary of the
// application: the authentication middleware delegates all token and account
// checks here.
type AuthService interface {
	// RegisterUser creates a new account from a registration payload.
	// The password is validated and hashed before persistence.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies a username/password pair and returns the stored account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateTokenPair issues a signed access+refresh token pair for the user.
	CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, refreshToken string) (models.Token, error)

	// ParseAccessToken validates a raw access token string and returns the
	// decoded token.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID resolves the account behind a validated token.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// NoteService implements the note operations: listing, creation, and
// admin-only deletion. Authorization decisions are delegated to the authz
// package before any storage access happens.
type NoteService interface {
	// ListNotes returns every note, newest first.
	ListNotes(ctx context.Context, principal models.User) ([]models.Note, error)

	// CreateNote validates the payload and persists a note authored by
	// principal.
	CreateNote(ctx context.Context, principal models.User, note models.Note) (models.Note, error)

	// DeleteNote deletes the note with the given id on behalf of principal
	// and returns a snapshot of the deleted record. Authorization is checked
	// before existence: a non-elevated principal receives ErrDeleteForbidden
	// without the note ever being looked up.
	DeleteNote(ctx context.Context, principal models.User, noteID int64) (models.Note, error)
}
