package term_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/imago/internal/adapters/term"
)

func newTestReporter(t *testing.T) (*term.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stderr bytes.Buffer
	return term.NewReporter(&bytes.Buffer{}, &stderr), &stderr
}

func TestReporterLines(t *testing.T) {
	r, stderr := newTestReporter(t)

	r.BuildStarted("base", "imago/base:latest")
	r.BuildFinished("base", 1500*time.Millisecond)
	r.Skipped("toolkit", "imago/toolkit:latest")
	r.PullStarted("imago/dev:latest")
	r.PullFinished("imago/dev:latest", 2*time.Second)

	lines := strings.Split(strings.TrimRight(stderr.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "[base] building imago/base:latest", lines[0])
	assert.Equal(t, "[base] done in 1.5s", lines[1])
	assert.Equal(t, "[toolkit] imago/toolkit:latest already present, skipping", lines[2])
	assert.Equal(t, "[pull] imago/dev:latest", lines[3])
	assert.Equal(t, "[pull] imago/dev:latest done in 2s", lines[4])
}

func TestReporterWithoutNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var stderr bytes.Buffer
	r := term.NewReporter(nil, &stderr)

	r.BuildStarted("base", "imago/base:latest")

	// ANSI escapes are present around the prefix.
	assert.Contains(t, stderr.String(), "\x1b[")
	assert.Contains(t, stderr.String(), "building imago/base:latest")
}

func TestReporterExposesBackendWriters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := term.NewReporter(&stdout, &stderr)

	_, err := r.Stdout().Write([]byte("layer 1/4"))
	assert.NoError(t, err)
	assert.Equal(t, "layer 1/4", stdout.String())

	_, err = r.Stderr().Write([]byte("warning"))
	assert.NoError(t, err)
	assert.Equal(t, "warning", stderr.String())
}
