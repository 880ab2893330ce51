package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group holds values that can never work.
var (
	// ErrInvalidSanityConfigs indicates invalid CMS settings
	// (for example, a negative request timeout).
	ErrInvalidSanityConfigs = errors.New("invalid sanity configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFile is returned for config files that are neither
	// JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
