package cppcheck

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Enqueue appends path to the files checked by the next runs. Empty and
// already enqueued paths are rejected.
func (c *realCppCheck) Enqueue(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidInput)
	}
	path = filepath.Clean(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Contains(c.files, path) {
		return fmt.Errorf("%w: %s is already enqueued", ErrInvalidInput, path)
	}
	c.files = append(c.files, path)
	return nil
}
