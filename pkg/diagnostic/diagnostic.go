// Package diagnostic defines analysis findings and the sink contract they are reported through.
package diagnostic

import (
	"fmt"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=diagnostic.go -destination=mocks/diagnostic.gen.go -package=mocks

// Severity represents the severity class of a finding.
type Severity string

// Severity classes, least severe first.
const (
	SeverityStyle   Severity = "style"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Level returns the numeric level (higher = more severe).
func (s Severity) Level() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityStyle:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	return s.Level() > 0
}

// Diagnostic is a finding reported by a check.
type Diagnostic struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
}

// String renders the diagnostic as "[file:line]: (severity) message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s:%d]: (%s) %s", d.File, d.Line, d.Severity, d.Message)
}

// Sink receives findings and progress messages from the analysis.
type Sink interface {
	// ReportFinding receives one analysis result.
	ReportFinding(d Diagnostic)
	// ReportProgress receives informational status text.
	ReportProgress(msg string)
}

// Reporter is the channel a check emits its diagnostics through.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}
