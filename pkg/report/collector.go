package report

import (
	"slices"
	"sync"

	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
)

// Collector keeps findings and progress messages in memory.
type Collector struct {
	mu       sync.Mutex
	findings []diagnostic.Diagnostic
	progress []string
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ReportFinding stores d.
func (c *Collector) ReportFinding(d diagnostic.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, d)
}

// ReportProgress stores msg.
func (c *Collector) ReportProgress(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress = append(c.progress, msg)
}

// Findings returns the findings received so far, in arrival order.
func (c *Collector) Findings() []diagnostic.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.findings)
}

// Progress returns the progress messages received so far, in arrival order.
func (c *Collector) Progress() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.progress)
}

// Reset discards everything collected.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = nil
	c.progress = nil
}
