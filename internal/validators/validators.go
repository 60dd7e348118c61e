// Package validators implements field-level validation for inbound request
// payloads. Validation failures are reported as a [ValidationError] carrying
// a field → reasons map, which the transport layer serializes into the
// response envelope for client-side form feedback.
package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-server/models"
)

// Field name constants used as keys of the validation errors map.
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"

	// FieldUsername targets the login name of a registration request.
	FieldUsername = "username"

	// FieldPassword targets the password of a registration request.
	FieldPassword = "password"
)

// MaxTitleLength is the maximum number of characters allowed in a note title.
const MaxTitleLength = 100

// Human-readable reasons attached to rejected fields.
const (
	ReasonBlank         = "This field may not be blank."
	ReasonTitleTooLong  = "Ensure this field has no more than 100 characters."
	ReasonUsernameTaken = "A user with that username already exists."
)

// ValidationError is an error carrying a field → reasons map describing why
// a payload was rejected.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface. It lists the rejected field names so
// that log output stays useful without dumping user content.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// NewValidationError builds a ValidationError rejecting a single field for a
// single reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {reason}}}
}

func (e *ValidationError) add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], reason)
}

// ValidateNote checks a note creation payload: the title must be non-blank
// and at most [MaxTitleLength] characters, the content must be non-blank.
//
// Returns nil when the payload is valid, or a *ValidationError listing every
// rejected field.
func ValidateNote(note models.Note) error {
	verr := &ValidationError{}

	if strings.TrimSpace(note.Title) == "" {
		verr.add(FieldTitle, ReasonBlank)
	} else if utf8.RuneCountInString(note.Title) > MaxTitleLength {
		verr.add(FieldTitle, ReasonTitleTooLong)
	}

	if strings.TrimSpace(note.Content) == "" {
		verr.add(FieldContent, ReasonBlank)
	}

	if len(verr.Fields) > 0 {
		return verr
	}

	return nil
}

// ValidateRegistration checks a registration payload: username and password
// must both be non-blank. Uniqueness of the username is enforced by the
// store, not here.
func ValidateRegistration(user models.User) error {
	verr := &ValidationError{}

	if strings.TrimSpace(user.Username) == "" {
		verr.add(FieldUsername, ReasonBlank)
	}

	if user.Password == "" {
		verr.add(FieldPassword, ReasonBlank)
	}

	if len(verr.Fields) > 0 {
		return verr
	}

	return nil
}
