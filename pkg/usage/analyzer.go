// Package usage finds functions that are defined but never used across all
// checked translation units.
package usage

import (
	"fmt"
	"slices"
	"sync"

	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// CheckName is the name of the unused function check.
const CheckName = "unusedFunction"

// EntryPoints are function names called by the runtime rather than by code.
var EntryPoints = []string{"main", "wmain", "WinMain", "wWinMain", "_tmain", "DllMain"}

// Analyzer accumulates function definitions and uses over all files of a run
// and reports the unused ones once every file has been seen.
type Analyzer struct {
	mu       sync.Mutex
	registry *Registry
}

// NewAnalyzer creates a new Analyzer with an empty registry.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		registry: NewRegistry(),
	}
}

// Name returns the check name.
func (a *Analyzer) Name() string {
	return CheckName
}

// Description returns a one-line summary of the check.
func (a *Analyzer) Description() string {
	return "free functions that are defined but never called from any checked file"
}

// Reset discards the registry of a previous run.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registry = NewRegistry()
}

// Check scans one file and merges its definitions and uses into the registry.
// It never reports directly: conclusions are drawn by Finalize.
func (a *Analyzer) Check(file string, tokens token.Stream, _ diagnostic.Reporter) {
	a.Merge(ScanFile(file, tokens))
}

// Merge folds a partial registry into the run registry.
func (a *Analyzer) Merge(partial *Registry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registry.Merge(partial)
}

// Symbols returns the number of function definitions registered so far.
func (a *Analyzer) Symbols() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.registry.Symbols()
}

// Finalize reports every unused function, sorted by file, line, then name.
func (a *Analyzer) Finalize(r diagnostic.Reporter) {
	a.mu.Lock()
	unused := Unused(a.registry)
	a.mu.Unlock()

	for _, sym := range unused {
		r.Report(diagnostic.Diagnostic{
			Check:    CheckName,
			Severity: diagnostic.SeverityStyle,
			Message:  fmt.Sprintf("The function '%s' is never used", sym.Name),
			File:     sym.File,
			Line:     sym.Line,
		})
	}
}

// Unused returns the symbols of reg eligible for an unused function report:
// the only member of its group, never used, a free function, and not an
// entry point. The result is sorted by file, line, then name.
func Unused(reg *Registry) []Symbol {
	var unused []Symbol
	for _, g := range reg.Groups() {
		if g.Len() == 0 || g.Ambiguous() || g.Uses() != 0 {
			continue
		}
		sym := g.members[0]
		if sym.Kind != ScopeFree || IsEntryPoint(sym.Name) {
			continue
		}
		unused = append(unused, sym)
	}
	slices.SortFunc(unused, compareSymbols)
	return unused
}

// IsEntryPoint reports whether name is a reserved program entry point.
func IsEntryPoint(name string) bool {
	return slices.Contains(EntryPoints, name)
}
