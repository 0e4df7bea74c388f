// Package tokenizer provides translation-unit token streams for C/C++ sources.
package tokenizer

import "errors"

// Error definitions for tokenizer package.
var (
	// Source ingestion errors.
	ErrReadSource = errors.New("failed to read source file")
)
