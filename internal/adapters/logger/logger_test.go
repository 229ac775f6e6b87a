package logger_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imago/internal/adapters/logger"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_New(t *testing.T) {
	require.NotNil(t, logger.New())
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("exec: docker build --tag imago/base:latest images/base")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "exec: docker build")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.New("daemon not running"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "daemon not running")
}

// TestLogger_ConcurrentAccess tests thread-safety of the logger.
func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		lg.Info("concurrent info")
	}()
	go func() {
		defer wg.Done()
		lg.Error(errors.New("concurrent error"))
	}()
	go func() {
		defer wg.Done()
		lg.SetOutput(&bytes.Buffer{})
	}()
	wg.Wait()
}
