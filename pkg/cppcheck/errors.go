package cppcheck

import "errors"

// Error definitions for cppcheck package.
var (
	// ErrConfiguration is returned when a configuration cannot be applied.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInvalidInput is returned for rejected paths and runs without files.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIngest wraps the failure to obtain the tokens of one file.
	ErrIngest = errors.New("failed to ingest file")
	// ErrSinkMissing is returned when no diagnostic sink is provided.
	ErrSinkMissing = errors.New("diagnostic sink is required but not set")
)
