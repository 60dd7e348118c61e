// Package authz holds the authorization policy for note operations.
//
// Every rule is a pure function over the authenticated user: no I/O, no side
// effects, no request plumbing. Handlers and services consult these functions
// instead of scattering permission checks across the transport layer, so the
// policy can be exercised in isolation.
package authz

import "github.com/MKhiriev/go-notes-server/models"

// CanListNotes reports whether principal may list notes.
// Every authenticated user sees every note; listing is intentionally
// unscoped and carries no ownership filtering.
func CanListNotes(principal models.User) bool {
	return true
}

// CanCreateNote reports whether principal may create a note.
// Any authenticated user may create notes.
func CanCreateNote(principal models.User) bool {
	return true
}

// CanDeleteNote reports whether principal may delete notes.
// Deletion is destructive and irreversible, so it is restricted to elevated
// users: staff members and superusers.
func CanDeleteNote(principal models.User) bool {
	return principal.IsStaff || principal.IsSuperuser
}
