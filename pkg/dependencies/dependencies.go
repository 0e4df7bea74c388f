// Package dependencies provides a centralized dependency container for cppcheck.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"
	"fmt"

	"github.com/lerenn/cppcheck-go/pkg/check"
	"github.com/lerenn/cppcheck-go/pkg/checks"
	"github.com/lerenn/cppcheck-go/pkg/fs"
	"github.com/lerenn/cppcheck-go/pkg/logger"
	"github.com/lerenn/cppcheck-go/pkg/tokenizer"
	"github.com/lerenn/cppcheck-go/pkg/usage"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrProviderMissing = errors.New("provider dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrChecksMissing   = errors.New("at least one check is required")
	ErrDuplicateCheck  = errors.New("check registered twice")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Provider tokenizer.Provider
	Logger   logger.Logger
	Checks   []check.Check
}

// New creates a new Dependencies instance with the default file system, the
// default tokenizer reading through it, a noop logger, and every check.
func New() *Dependencies {
	fsys := fs.NewFS()
	return &Dependencies{
		FS:       fsys,
		Provider: tokenizer.NewProvider(fsys),
		Logger:   logger.NewNoopLogger(),
		Checks:   DefaultChecks(),
	}
}

// DefaultChecks returns a fresh instance of every registered check.
func DefaultChecks() []check.Check {
	return append([]check.Check{usage.NewAnalyzer()}, checks.All()...)
}

// WithFS sets the filesystem and returns the instance for chaining.
// The provider is left untouched.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithProvider sets the translation unit provider and returns the instance for chaining.
func (d *Dependencies) WithProvider(p tokenizer.Provider) *Dependencies {
	d.Provider = p
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithChecks replaces the registered checks and returns the instance for chaining.
func (d *Dependencies) WithChecks(checks ...check.Check) *Dependencies {
	d.Checks = checks
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	deps := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Provider, ErrProviderMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, dep := range deps {
		if dep.dep == nil {
			return dep.err
		}
	}

	if len(d.Checks) == 0 {
		return ErrChecksMissing
	}
	seen := make(map[string]struct{}, len(d.Checks))
	for _, c := range d.Checks {
		if _, ok := seen[c.Name()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCheck, c.Name())
		}
		seen[c.Name()] = struct{}{}
	}
	return nil
}
