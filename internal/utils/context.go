// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key used to store the authenticated identity (the
// email recovered from a verified bearer token) in the request context.
// Used together with GetIdentityFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.IdentityCtxKey, "alice@example.com")
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetIdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(string)
	return identity, ok
}
