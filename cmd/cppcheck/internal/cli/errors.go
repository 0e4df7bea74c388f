// Package cli provides the configuration loading and wiring of the cppcheck CLI.
package cli

import "errors"

// Error definitions for cli package.
var (
	// Configuration loading errors.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	// Source discovery errors.
	ErrPathNotFound  = errors.New("no such file or directory")
	ErrNoSourceFiles = errors.New("no C/C++ source file found")
)
