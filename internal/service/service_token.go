package service

import (
	"context"
	"fmt"
	"time"

	"github.com/emarchenko/go-identity/internal/config"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/utils"
	"github.com/emarchenko/go-identity/models"
)

// tokenService is the concrete implementation of TokenService.
// Signing and verification share the same HMAC secret; no token state is
// kept on the server.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without an expiry claim.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim and the user's email as the "sub" claim, and
// expires after the configured duration (never, when the duration is zero).
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (t *tokenService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, user.Email, t.tokenDuration, t.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim (and expiry, when the claim is present). Any validation
// failure (expired, wrong issuer, wrong secret, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
