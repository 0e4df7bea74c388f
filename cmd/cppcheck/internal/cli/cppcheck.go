package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/lerenn/cppcheck-go/pkg/cppcheck"
	"github.com/lerenn/cppcheck-go/pkg/dependencies"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/logger"
	"github.com/lerenn/cppcheck-go/pkg/report"
)

// NewSink creates the sink selected by the output flags.
func NewSink(opts Options, stdout, stderr io.Writer) diagnostic.Sink {
	if opts.JSON {
		return report.NewJSONSink(stdout)
	}
	return report.NewTextSink(stdout, stderr, report.TextOptions{
		Color: !opts.NoColor,
		Quiet: opts.Quiet,
	})
}

// WriteDoc lists the available checks with their description.
func WriteDoc(w io.Writer) {
	for _, c := range dependencies.DefaultChecks() {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", c.Name(), c.Description())
	}
}

// Run checks the files designated by args and returns the process exit code.
func Run(ctx context.Context, opts Options, args []string, stdout, stderr io.Writer) (int, error) {
	if opts.Doc {
		WriteDoc(stdout)
		return 0, nil
	}

	deps := dependencies.New()
	if opts.Verbose {
		deps = deps.WithLogger(logger.NewDefaultLogger(stderr))
	}

	manager, err := NewConfigManager(deps.FS, opts)
	if err != nil {
		return 0, err
	}
	cfg, err := LoadConfig(manager, opts)
	if err != nil {
		return 0, err
	}

	files, err := CollectFiles(deps.FS, args)
	if err != nil {
		return 0, err
	}

	c, err := cppcheck.NewCppCheck(cppcheck.NewCppCheckParams{
		Sink:         NewSink(opts, stdout, stderr),
		Dependencies: deps,
	})
	if err != nil {
		return 0, err
	}
	if err := c.Configure(cfg); err != nil {
		return 0, err
	}
	for _, f := range files {
		if err := c.Enqueue(f); err != nil {
			return 0, err
		}
	}

	count, err := c.Run(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return opts.ErrorExitCode, nil
	}
	return 0, nil
}
