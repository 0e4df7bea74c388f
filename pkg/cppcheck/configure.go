package cppcheck

import (
	"fmt"

	"github.com/lerenn/cppcheck-go/pkg/check"
	"github.com/lerenn/cppcheck-go/pkg/config"
)

// Configure validates cfg against the registered checks and makes it the
// configuration of the next runs. A run in progress keeps its own copy.
func (c *realCppCheck) Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if _, err := cfg.EnabledChecks(check.Names(c.deps.Checks)); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg.Clone()
	return nil
}

// enabledChecks returns the registered checks enabled by cfg, in registration order.
func (c *realCppCheck) enabledChecks(cfg config.Config) ([]check.Check, error) {
	names, err := cfg.EnabledChecks(check.Names(c.deps.Checks))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	enabled := make([]check.Check, 0, len(names))
	for _, ch := range c.deps.Checks {
		for _, name := range names {
			if ch.Name() == name {
				enabled = append(enabled, ch)
				break
			}
		}
	}
	return enabled, nil
}
