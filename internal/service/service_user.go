package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/store"
	"github.com/emarchenko/go-identity/internal/utils"
	"github.com/emarchenko/go-identity/models"
)

// userService is the concrete implementation of UserService.
// It handles account creation, credential verification, and profile lookup
// using a UserRepository for persistence and bcrypt for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// It validates that Email and Password are non-empty, hashes the password
// with bcrypt, and delegates persistence to the UserRepository. The
// plaintext password never leaves this method.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrUserAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		Name:         request.Name,
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// ValidateCredentials authenticates an existing user.
//
// It validates that Email and Password are non-empty, looks the account up
// by email, and compares the supplied password against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if no account matches the email OR the password
//     does not match. The two cases are intentionally indistinguishable;
//     only the log entry records which one occurred.
func (s *userService) ValidateCredentials(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", credentials.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.PasswordHash, credentials.Password) {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetProfile resolves the profile for an already-authenticated identity.
//
// A record that has disappeared between token issuance and use is not an
// error: the method returns a zero [models.User] and the caller renders
// empty fields instead of failing the request.
func (s *userService) GetProfile(ctx context.Context, identity string) (models.User, error) {
	log := logger.FromContext(ctx)

	if identity == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", identity).Msg("token subject no longer resolves to a user")
			return models.User{}, nil
		}

		log.Err(err).Str("email", identity).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return foundUser, nil
}
