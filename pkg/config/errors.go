package config

import "errors"

// ErrInvalidConfig is the root of all configuration validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrMissingAPIKey is returned when REMOTE_API_KEY is unset.
var ErrMissingAPIKey = errors.New("REMOTE_API_KEY is required")
