//go:build unit

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestDefaultLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf)

	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")

	assert.Equal(t, "test message\ntest message with args: value\n", buf.String())
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
}
