// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Source discovery errors.
	ErrNotADirectory  = errors.New("not a directory")
	ErrInvalidPattern = errors.New("invalid glob pattern")
	// Path expansion errors.
	ErrHomeDir = errors.New("failed to determine home directory")
)
