package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials collapses "no such user" and "wrong password"
	// into one value so that a client probing the login endpoint cannot
	// enumerate registered emails. Callers must not re-split it.
	ErrInvalidCredentials = errors.New("invalid email/password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
