//go:build unit

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finding = diagnostic.Diagnostic{
	Check:    "unusedFunction",
	Severity: diagnostic.SeverityStyle,
	Message:  "The function 'helper' is never used",
	File:     "a.c",
	Line:     6,
}

func TestTextSink(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := NewTextSink(&out, &errOut, TextOptions{})

	sink.ReportProgress("Checking a.c...")
	sink.ReportFinding(finding)

	assert.Equal(t, "Checking a.c...\n", out.String())
	assert.Equal(t, "[a.c:6]: (style) The function 'helper' is never used\n", errOut.String())
}

func TestTextSink_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := NewTextSink(&out, &errOut, TextOptions{Quiet: true})

	sink.ReportProgress("Checking a.c...")
	sink.ReportFinding(finding)

	assert.Empty(t, out.String())
	assert.NotEmpty(t, errOut.String())
}

func TestTextSink_ColorKeepsText(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := NewTextSink(&out, &errOut, TextOptions{Color: true})

	sink.ReportFinding(finding)

	// A buffer is not a terminal, so only the text is checked.
	assert.Contains(t, errOut.String(), "[a.c:6]: (")
	assert.Contains(t, errOut.String(), "style")
	assert.True(t, strings.HasSuffix(errOut.String(), ") The function 'helper' is never used\n"))
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)

	sink.ReportProgress("Checking a.c...")
	sink.ReportFinding(finding)
	sink.ReportFinding(diagnostic.Diagnostic{Check: "zeroDivision", Severity: diagnostic.SeverityError, Message: "Division by zero", File: "b.c", Line: 2})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got diagnostic.Diagnostic
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, finding, got)
	assert.Contains(t, lines[1], `"severity":"error"`)
}

func TestCollector(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.ReportFinding(finding)
			c.ReportProgress("progress")
		}()
	}
	wg.Wait()

	assert.Len(t, c.Findings(), 10)
	assert.Len(t, c.Progress(), 10)

	c.Reset()
	assert.Empty(t, c.Findings())
	assert.Empty(t, c.Progress())
}
