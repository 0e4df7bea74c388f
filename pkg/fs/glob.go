package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Glob finds the paths matching the pattern, sorted.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, pattern, err)
	}
	return matches, nil
}

// IsPattern reports whether path holds glob metacharacters.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, "*?[")
}
