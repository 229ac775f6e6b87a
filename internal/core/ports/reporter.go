package ports

import (
	"io"
	"time"
)

// Reporter receives the observable progress events of a run. Build and pull
// actions are bracketed by a start and a finish notification; skipped
// prerequisites are reported once.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// BuildStarted announces that the target's build action is about to run.
	BuildStarted(target, tag string)
	// BuildFinished announces a successful build action.
	BuildFinished(target string, elapsed time.Duration)
	// Skipped announces that a prerequisite was not rebuilt because its
	// image already exists.
	Skipped(target, tag string)
	// PullStarted announces that the tag is about to be pulled.
	PullStarted(tag string)
	// PullFinished announces a successful pull.
	PullFinished(tag string, elapsed time.Duration)

	// Stdout and Stderr are the writers the external build backend streams
	// its own output to.
	Stdout() io.Writer
	Stderr() io.Writer
}
