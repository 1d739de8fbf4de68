package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password using
// the library's default cost. The hash embeds its own salt, so two calls with
// the same input produce different outputs; comparison must go through
// [ComparePassword].
//
// Returns an error if the password exceeds bcrypt's 72-byte input limit or
// hashing fails.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time within bcrypt itself.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
