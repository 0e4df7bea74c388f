package report

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
)

// JSONSink writes one JSON object per finding. Progress messages are dropped
// so that the output stays machine readable.
type JSONSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONSink creates a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// ReportFinding encodes d as a single line.
func (s *JSONSink) ReportFinding(d diagnostic.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.enc.Encode(d)
}

// ReportProgress does nothing.
func (s *JSONSink) ReportProgress(string) {}
