// Package config provides configuration management functionality for cppcheck.
package config

import (
	"fmt"
	"slices"

	"github.com/lerenn/cppcheck-go/configs"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"gopkg.in/yaml.v3"
)

// Config represents the analysis configuration.
type Config struct {
	Enable   []string            `yaml:"enable"`
	Disable  []string            `yaml:"disable"`
	Severity diagnostic.Severity `yaml:"severity"`
	Jobs     int                 `yaml:"jobs"`
}

// Default returns the configuration embedded in configs/default.yaml.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Config{Severity: diagnostic.SeverityStyle, Jobs: 1}
	}
	return cfg
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if !c.Severity.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, c.Severity)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidJobs, c.Jobs)
	}
	return nil
}

// EnabledChecks resolves the enable and disable lists against the available
// check names. The result keeps the order of available.
func (c Config) EnabledChecks(available []string) ([]string, error) {
	for _, name := range slices.Concat(c.Enable, c.Disable) {
		if !slices.Contains(available, name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
	}

	enabled := make([]string, 0, len(available))
	for _, name := range available {
		if len(c.Enable) > 0 && !slices.Contains(c.Enable, name) {
			continue
		}
		if slices.Contains(c.Disable, name) {
			continue
		}
		enabled = append(enabled, name)
	}

	if len(enabled) == 0 {
		return nil, ErrNoChecksEnabled
	}
	return enabled, nil
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	c.Enable = slices.Clone(c.Enable)
	c.Disable = slices.Clone(c.Disable)
	return c
}
