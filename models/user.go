package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the persistence layer on creation.
	ID int64 `json:"id"`

	// Email is the unique identifier used during authentication
	// and carried as the subject of issued tokens.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never hold plaintext and is excluded from JSON.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsZero reports whether the record carries no resolved identity.
// An empty record is what the profile flow yields when a token's
// subject can no longer be found in the directory.
func (u User) IsZero() bool {
	return u.ID == 0 && u.Email == ""
}
