package adapter

import "errors"

// Sentinel errors the client maps API failure statuses onto. Callers match
// with [errors.Is]; the server-provided message is wrapped around them.
var (
	// ErrUnauthorized corresponds to HTTP 401: bad credentials at login, or
	// a missing/invalid bearer token on an authenticated call.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRejected corresponds to HTTP 422: the server refused the request
	// body (validation failure or duplicate registration).
	ErrRejected = errors.New("request rejected")

	// ErrServer corresponds to any 5xx response.
	ErrServer = errors.New("server error")
)
