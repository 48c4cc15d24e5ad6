package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid connection settings
	// (for example, a malformed address or a zero keep-alive interval).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates invalid command loop settings
	// (for example, a zero cooldown).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
