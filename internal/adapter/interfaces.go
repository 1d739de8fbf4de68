// Package adapter provides the consumer-side SDK for the identity API:
// a typed HTTP client covering registration, login, and profile retrieval,
// holding the issued bearer token between calls.
package adapter

import (
	"context"

	"github.com/emarchenko/go-identity/models"
)

// IdentityClient is the contract a consumer of the identity API programs
// against.
type IdentityClient interface {
	// Register creates a new account and returns its public projection.
	Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is also stored on the client for subsequent authenticated calls.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Profile fetches the account behind the stored bearer token.
	Profile(ctx context.Context) (models.UserResponse, error)

	// SetToken replaces the bearer token used for authenticated calls.
	SetToken(token string)

	// Token returns the bearer token currently held, or an empty string.
	Token() string
}
