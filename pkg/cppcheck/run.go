package cppcheck

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/lerenn/cppcheck-go/pkg/check"
	"golang.org/x/sync/errgroup"
)

// Run checks every enqueued file with the enabled checks, then finalizes the
// checks that draw conclusions over all files. Per-file findings are
// streamed to the sink as they are produced. It returns the number of
// findings that passed the severity filter.
func (c *realCppCheck) Run(ctx context.Context) (int, error) {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	c.mu.Lock()
	cfg := c.cfg.Clone()
	files := slices.Clone(c.files)
	c.mu.Unlock()

	if len(files) == 0 {
		return 0, fmt.Errorf("%w: no file enqueued", ErrInvalidInput)
	}

	enabled, err := c.enabledChecks(cfg)
	if err != nil {
		return 0, err
	}
	c.resetChecks()

	c.VerbosePrint("Checking %d files with %v (jobs: %d, severity: %s)",
		len(files), check.Names(enabled), cfg.Jobs, cfg.Severity)

	rep := newRunReporter(c.sink, cfg.Severity)
	if err := c.checkFiles(ctx, files, enabled, cfg.Jobs, rep); err != nil {
		return rep.Count(), err
	}

	for _, ch := range enabled {
		if f, ok := ch.(check.Finalizer); ok {
			c.VerbosePrint("Finalizing %s", f.Name())
			f.Finalize(rep)
		}
	}

	c.VerbosePrint("Run completed: %d diagnostics", rep.Count())
	return rep.Count(), nil
}

// resetChecks clears the state kept by checks from a previous run.
func (c *realCppCheck) resetChecks() {
	for _, ch := range c.deps.Checks {
		if r, ok := ch.(check.Resetter); ok {
			r.Reset()
		}
	}
}

// checkFiles feeds every file to the enabled checks using at most jobs
// workers. With a single worker, files are checked one after the other in
// order. It returns once every started file is done.
func (c *realCppCheck) checkFiles(ctx context.Context, files []string, enabled []check.Check, jobs int, rep *runReporter) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	var done atomic.Int64
	total := int64(len(files))

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			c.checkFile(file, enabled, rep)

			n := done.Add(1)
			rep.Progress(fmt.Sprintf("%d/%d files checked %d%% done", n, total, n*100/total))
			return nil
		})
	}

	// Barrier: no finalization before every per-file scan is complete.
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// checkFile runs the enabled checks over one file. A file whose tokens
// cannot be obtained is reported and skipped.
func (c *realCppCheck) checkFile(file string, enabled []check.Check, rep *runReporter) {
	rep.Progress(fmt.Sprintf("Checking %s...", file))

	tokens, err := c.deps.Provider.TokensFor(file)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrIngest, file, err)
		c.VerbosePrint("Skipping %s: %v", file, err)
		rep.Progress(err.Error())
		return
	}

	for _, ch := range enabled {
		ch.Check(file, tokens, rep)
	}
}
