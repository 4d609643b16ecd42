package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when the merged configuration
	// lacks a token signing key or a positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidStorageConfigs is returned when database connection
	// settings or the upload directory are incomplete.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when the HTTP listen address
	// is empty.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
