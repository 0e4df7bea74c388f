// Package check defines the contract implemented by analysis check modules.
package check

import (
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// Check is one analysis module run over every translation unit.
// Implementations must be safe for concurrent use by multiple files.
type Check interface {
	// Name returns the identifier used to enable or disable the check.
	Name() string
	// Description returns a one-line summary of what the check reports.
	Description() string
	// Check scans the tokens of one file and reports findings through r.
	// Tokens of preprocessor directives are part of the stream.
	Check(file string, tokens token.Stream, r diagnostic.Reporter)
}

// Finalizer is a check that draws conclusions once every file has been checked.
type Finalizer interface {
	Check
	// Finalize reports the findings that depend on all files.
	Finalize(r diagnostic.Reporter)
}

// Resetter is a check holding state across files that must be cleared between runs.
type Resetter interface {
	Reset()
}

// Names returns the names of checks, in order.
func Names(checks []Check) []string {
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}
	return names
}
