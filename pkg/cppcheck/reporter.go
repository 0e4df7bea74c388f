package cppcheck

import (
	"sync"

	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
)

// runReporter serializes the calls to the sink of one run, drops the findings
// below the minimum severity or already reported, and counts the others.
type runReporter struct {
	mu       sync.Mutex
	sink     diagnostic.Sink
	minimum  diagnostic.Severity
	reported map[diagnostic.Diagnostic]struct{}
	count    int
}

func newRunReporter(sink diagnostic.Sink, minimum diagnostic.Severity) *runReporter {
	return &runReporter{
		sink:     sink,
		minimum:  minimum,
		reported: make(map[diagnostic.Diagnostic]struct{}),
	}
}

// Report forwards d to the sink unless it is below the minimum severity or
// an identical finding was already forwarded during the run.
func (r *runReporter) Report(d diagnostic.Diagnostic) {
	if d.Severity.Level() < r.minimum.Level() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reported[d]; ok {
		return
	}
	r.reported[d] = struct{}{}
	r.count++
	r.sink.ReportFinding(d)
}

// Progress forwards msg to the sink.
func (r *runReporter) Progress(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink.ReportProgress(msg)
}

// Count returns the number of findings forwarded so far.
func (r *runReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
