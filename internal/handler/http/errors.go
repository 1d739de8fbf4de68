package http

import (
	"errors"
	"fmt"
)

// HTTPError is the single typed error representation every pipeline stage
// funnels into. Any error raised during routing must either be an HTTPError
// or be coercible to the generic 500 one before it reaches the client.
type HTTPError struct {
	// StatusCode is the HTTP status written to the response.
	StatusCode int

	// Message is the client-facing description; it never carries internal
	// failure detail.
	Message string

	// Context optionally names the operation that raised the error
	// (e.g. "login"). Used in logs only, never sent to the client.
	Context string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("[%s] %d: %s", e.Context, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError builds an HTTPError with an optional operation context.
func NewHTTPError(statusCode int, message string, context ...string) *HTTPError {
	e := &HTTPError{StatusCode: statusCode, Message: message}
	if len(context) > 0 {
		e.Context = context[0]
	}
	return e
}

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth guard when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoIdentityInContext is returned by handlers behind the auth guard
	// when the resolved identity is unexpectedly absent from the request
	// context. Reaching it means a route was registered without the guard.
	ErrNoIdentityInContext = errors.New("no identity in request context")
)
