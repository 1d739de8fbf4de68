package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// supplied through any configuration source (SECRET env variable,
	// -secret flag, or JSON file). The service refuses to start without it.
	ErrMissingTokenSignKey = errors.New("token signing secret is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
