// Package app contains shared application-layer constants used across the
// go-identity server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails structural validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgAuthorizationError is the single message used for every
	// authorization failure: bad credentials at login, and missing, invalid,
	// expired, or unverifiable bearer tokens at the guard. Reusing one string
	// keeps the failure modes indistinguishable to a probing client.
	MsgAuthorizationError = "authorization error"

	// MsgUserAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgUserAlreadyExists = "user already exists"

	// MsgInternalError is returned when an unexpected server-side failure
	// occurs that the client cannot resolve. Internal detail is never
	// appended to it.
	MsgInternalError = "internal error"
)
