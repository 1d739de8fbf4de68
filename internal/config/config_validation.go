package config

// Defaults applied after all sources have been merged. Only fields still
// empty at that point receive a default; the signing secret deliberately has
// none.
const (
	defaultHTTPAddress = "localhost:8000"
	defaultTokenIssuer = "go-identity"
)

// applyDefaults fills optional fields left empty by every configuration
// source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing secret is the one setting without which the service
// cannot operate at all: startup must fail rather than degrade into
// per-request errors.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
