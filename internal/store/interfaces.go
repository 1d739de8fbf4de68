package store

import (
	"context"

	"github.com/emarchenko/go-identity/models"
)

// UserRepository is the narrow contract the rest of the application holds on
// the user directory: create a record, find a record. Consistency of
// concurrent writes is entirely the backend's concern.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists when the email is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the record whose email matches exactly.
	// Returns ErrNoUserWasFound when no such record exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
