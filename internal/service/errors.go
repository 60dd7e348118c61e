package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when the authorization policy denies an
	// operation other than deletion.
	ErrForbidden = errors.New("operation is not allowed")

	// ErrDeleteForbidden is returned when a non-elevated user attempts to
	// delete a note. The check happens before any lookup, so the caller
	// learns nothing about whether the note exists.
	ErrDeleteForbidden = errors.New("only administrators can delete notes")
)
