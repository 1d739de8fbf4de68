package service

import (
	"context"

	"github.com/emarchenko/go-identity/models"
)

// UserService is the business logic over the user directory.
type UserService interface {
	// CreateUser registers a new account. Returns store.ErrUserAlreadyExists
	// (wrapped) when the email is taken.
	CreateUser(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// ValidateCredentials authenticates a login attempt. An unknown email
	// and a wrong password both yield ErrInvalidCredentials, deliberately
	// indistinguishable from each other.
	ValidateCredentials(ctx context.Context, credentials models.Credentials) (models.User, error)

	// GetProfile resolves the record behind an already-authenticated
	// identity. An identity that no longer resolves yields a zero record
	// and no error; callers render empty fields.
	GetProfile(ctx context.Context, identity string) (models.User, error)
}

// TokenService mints and verifies the stateless bearer tokens the service
// issues. No server-side token state exists; possession of a validly signed
// token is the whole proof.
type TokenService interface {
	// CreateToken issues a signed token whose subject is the user's email.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the decoded token.
	// Any verification failure normalises to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
