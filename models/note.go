package models

import "time"

// Note represents a single note record.
//
// Every note has exactly one author, set at creation time to the requesting
// user and never reassignable afterwards. Notes are immutable once created:
// there is no update operation, only creation and (admin-only) deletion.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// Title is a short human-readable title, 1..100 characters, non-blank.
	Title string `json:"title"`

	// Content is the unbounded note body.
	Content string `json:"content"`

	// AuthorID references the user who created the note.
	AuthorID int64 `json:"author_id"`

	// AuthorUsername is the author's username joined from the users table.
	// It is derived on read, not stored redundantly on the note record.
	AuthorUsername string `json:"author_username"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
