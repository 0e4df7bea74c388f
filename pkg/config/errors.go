package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidSeverity = errors.New("severity must be one of style, warning, error")
	ErrInvalidJobs     = errors.New("jobs must be at least 1")
	// Check selection errors.
	ErrUnknownCheck    = errors.New("unknown check")
	ErrNoChecksEnabled = errors.New("no check enabled")
)
