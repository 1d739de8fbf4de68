package models

// UserResponse is the public projection of a [User] returned by the
// registration and profile endpoints. Fields are empty when a valid token's
// subject can no longer be resolved to a stored record.
type UserResponse struct {
	// Email is the account's login identifier.
	Email string `json:"email,omitempty"`

	// ID is the server-assigned account identifier.
	ID int64 `json:"id,omitempty"`
}

// TokenResponse carries the bearer token issued on a successful login.
type TokenResponse struct {
	// JWT is the compact serialized token the client presents in the
	// Authorization header of subsequent requests.
	JWT string `json:"jwt"`
}

// ErrorResponse is the uniform error body produced by the error pipeline.
// Every failed request, regardless of which stage raised it, serializes to
// this shape.
type ErrorResponse struct {
	// Message is a human-readable description of the failure. Internal
	// error detail is never forwarded here.
	Message string `json:"message"`
}
