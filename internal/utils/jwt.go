package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emarchenko/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer   (iss): identifies the service that issued the token
//   - Subject  (sub): the email of the authenticated user
//   - IssuedAt (iat): the current time, at seconds resolution
//
// An ExpiresAt (exp) claim is added only when tokenDuration is non-zero.
// A zero duration produces a token with no expiry, which verification will
// accept indefinitely.
//
// Issuer, subject and signKey are required. Returns an error if any of them
// are empty or signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-identity", "a@a.com", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now().Truncate(time.Second)
	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  subject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if tokenDuration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Subject: subject}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check, when the claim is present
//   - Subject (sub) claim presence
//
// Only the HMAC family of signing methods is accepted; a token signed with a
// different method (or under any other secret) fails verification.
//
// Returns the parsed token with its Subject populated, or an error if
// validation fails or the subject claim is missing.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-identity")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsedToken := models.Token{Token: token, SignedString: tokenString, Subject: subject}
	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok {
		parsedToken.RegisteredClaims = *claims
	}
	return parsedToken, nil
}

func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
