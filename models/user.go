package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// Password carries the plaintext password of an inbound registration or
	// login request. It is never persisted and never written to a response:
	// outbound payloads are built from dedicated response types.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// IsStaff marks the user as a member of the administrative staff.
	IsStaff bool `json:"is_staff"`

	// IsSuperuser marks the user as a superuser with full privileges.
	IsSuperuser bool `json:"is_superuser"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds elevated privileges.
// It is a derived view over IsStaff and IsSuperuser, never a stored field.
func (u User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
