// Package checks provides the per-file token pattern checks.
package checks

import (
	"github.com/lerenn/cppcheck-go/pkg/check"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// All returns a fresh instance of every per-file check.
func All() []check.Check {
	return []check.Check{
		NewDangerousFunctions(),
		NewRedundantCondition(),
		NewZeroDivision(),
	}
}

// memberAccess reports whether the token at index i is reached through an
// object, pointer, or scope, in which case it is not the libc function.
func memberAccess(tokens token.Stream, i int) bool {
	switch tokens.Str(i - 1) {
	case ".", "->", "::":
		return true
	}
	return false
}

func report(r diagnostic.Reporter, name string, sev diagnostic.Severity, file string, line int, msg string) {
	r.Report(diagnostic.Diagnostic{
		Check:    name,
		Severity: sev,
		Message:  msg,
		File:     file,
		Line:     line,
	})
}
