// Package report provides the sinks analysis results are delivered to.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
)

// TextOptions configures a TextSink.
type TextOptions struct {
	// Color enables severity colouring when the findings writer supports it.
	Color bool
	// Quiet drops progress messages.
	Quiet bool
}

// TextSink writes progress messages to one writer and findings, rendered as
// "[file:line]: (severity) message", to another.
type TextSink struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	opts     TextOptions
	severity map[diagnostic.Severity]lipgloss.Style
}

// NewTextSink creates a TextSink writing progress to out and findings to errOut.
func NewTextSink(out, errOut io.Writer, opts TextOptions) *TextSink {
	renderer := lipgloss.NewRenderer(errOut)
	return &TextSink{
		out:    out,
		errOut: errOut,
		opts:   opts,
		severity: map[diagnostic.Severity]lipgloss.Style{
			diagnostic.SeverityError:   renderer.NewStyle().Foreground(lipgloss.Color("#f85149")).Bold(true),
			diagnostic.SeverityWarning: renderer.NewStyle().Foreground(lipgloss.Color("#d29922")),
			diagnostic.SeverityStyle:   renderer.NewStyle().Foreground(lipgloss.Color("#58a6ff")),
		},
	}
}

// ReportFinding writes d to the findings writer.
func (s *TextSink) ReportFinding(d diagnostic.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sev := string(d.Severity)
	if style, ok := s.severity[d.Severity]; ok && s.opts.Color {
		sev = style.Render(sev)
	}
	_, _ = fmt.Fprintf(s.errOut, "[%s:%d]: (%s) %s\n", d.File, d.Line, sev, d.Message)
}

// ReportProgress writes msg to the progress writer unless the sink is quiet.
func (s *TextSink) ReportProgress(msg string) {
	if s.opts.Quiet {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, msg)
}
