package cli

import (
	"fmt"

	"github.com/lerenn/cppcheck-go/pkg/config"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/fs"
)

// Options holds the command line flags.
type Options struct {
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Enable and Disable override the check selection of the config file.
	Enable  []string
	Disable []string
	// Severity overrides the minimum reported severity when set.
	Severity string
	// Jobs overrides the number of workers when positive.
	Jobs int
	// JSON writes findings as JSON lines.
	JSON bool
	// Quiet suppresses progress output.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// NoColor disables severity colouring.
	NoColor bool
	// ErrorExitCode is the exit code used when findings are reported.
	ErrorExitCode int
	// Doc lists the available checks instead of running them.
	Doc bool
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager(fsys fs.FS, opts Options) (config.Manager, error) {
	if opts.ConfigPath == "" {
		return config.NewManager(config.DefaultConfigPath), nil
	}

	path, err := fsys.ExpandPath(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return config.NewManager(path), nil
}

// LoadConfig loads the configuration file and applies the flag overrides.
// An explicit config path must exist; the default one is optional.
func LoadConfig(manager config.Manager, opts Options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = manager.GetConfig()
	} else {
		cfg, err = manager.GetConfigWithFallback()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if len(opts.Enable) > 0 {
		cfg.Enable = opts.Enable
	}
	if len(opts.Disable) > 0 {
		cfg.Disable = opts.Disable
	}
	if opts.Severity != "" {
		cfg.Severity = diagnostic.Severity(opts.Severity)
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}
