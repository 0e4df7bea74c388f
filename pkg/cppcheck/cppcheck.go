// Package cppcheck orchestrates an analysis run: it holds the configuration
// and the queue of files, feeds every file to the enabled checks, and
// finalizes the cross-file checks once all files have been seen.
package cppcheck

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/lerenn/cppcheck-go/pkg/config"
	"github.com/lerenn/cppcheck-go/pkg/dependencies"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/logger"
)

// CppCheck interface provides the analysis orchestration functionality.
type CppCheck interface {
	// Configure replaces the configuration used by the next runs.
	Configure(cfg config.Config) error
	// Enqueue appends a file to the list of files to check.
	Enqueue(path string) error
	// Run checks every enqueued file and returns the number of reported diagnostics.
	Run(ctx context.Context) (int, error)
	// Files returns the enqueued files, in order.
	Files() []string
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewCppCheckParams contains parameters for creating a new CppCheck instance.
type NewCppCheckParams struct {
	Sink         diagnostic.Sink
	Dependencies *dependencies.Dependencies
}

type realCppCheck struct {
	deps *dependencies.Dependencies
	sink diagnostic.Sink

	// runMu serializes runs.
	runMu sync.Mutex

	mu    sync.Mutex
	cfg   config.Config
	files []string
}

// NewCppCheck creates a new CppCheck instance using the default configuration.
func NewCppCheck(params NewCppCheckParams) (CppCheck, error) {
	if params.Sink == nil {
		return nil, ErrSinkMissing
	}

	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	c := &realCppCheck{
		deps: deps,
		sink: params.Sink,
	}
	if err := c.Configure(config.Default()); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLogger sets the logger for this CppCheck instance.
func (c *realCppCheck) SetLogger(logger logger.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deps.Logger = logger
}

// Files returns the enqueued files, in order.
func (c *realCppCheck) Files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.files)
}

// VerbosePrint logs a formatted message using the current logger.
func (c *realCppCheck) VerbosePrint(msg string, args ...interface{}) {
	c.mu.Lock()
	log := c.deps.Logger
	c.mu.Unlock()

	if log != nil {
		log.Logf(msg, args...)
	}
}
