package validators

import "errors"

// Field-level sentinel errors. Validate joins every failing field's error
// into one value, so callers can both render the full list and match
// individual fields with [errors.Is].
var (
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyName     = errors.New("name is required")

	ErrUnknownField    = errors.New("unknown field")
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
