// Package term provides a synchronous, line-oriented progress reporter.
package term

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
)

// Reporter implements ports.Reporter with chronological, prefixed lines.
// Builds run one at a time, so docker's own output can be streamed straight
// through between the start and finish lines without interleaving.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter. Progress lines go to stderr, leaving
// stdout to the build backend's own output.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	output := termenv.NewOutput(stderr, termenv.WithProfile(colorProfile()))

	return &Reporter{
		stdout: stdout,
		stderr: stderr,
		output: output,
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// BuildStarted prints the opening bracket of a build action.
func (r *Reporter) BuildStarted(target, tag string) {
	prefix := r.output.String(fmt.Sprintf("[%s]", target)).Bold().String()
	_, _ = fmt.Fprintf(r.stderr, "%s building %s\n", prefix, tag)
}

// BuildFinished prints the closing bracket of a successful build action.
func (r *Reporter) BuildFinished(target string, elapsed time.Duration) {
	prefix := r.output.String(fmt.Sprintf("[%s]", target)).Bold().String()
	done := r.output.String("done").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s in %s\n", prefix, done, elapsed.Round(time.Millisecond))
}

// Skipped prints a line for a prerequisite whose image already exists.
func (r *Reporter) Skipped(target, tag string) {
	prefix := r.output.String(fmt.Sprintf("[%s]", target)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s already present, skipping\n", prefix, tag)
}

// PullStarted prints the opening bracket of a pull.
func (r *Reporter) PullStarted(tag string) {
	prefix := r.output.String("[pull]").Bold().String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", prefix, tag)
}

// PullFinished prints the closing bracket of a successful pull.
func (r *Reporter) PullFinished(tag string, elapsed time.Duration) {
	prefix := r.output.String("[pull]").Bold().String()
	done := r.output.String("done").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s %s in %s\n", prefix, tag, done, elapsed.Round(time.Millisecond))
}

// Stdout returns the writer the build backend streams its stdout to.
func (r *Reporter) Stdout() io.Writer {
	return r.stdout
}

// Stderr returns the writer the build backend streams its stderr to.
func (r *Reporter) Stderr() io.Writer {
	return r.stderr
}
