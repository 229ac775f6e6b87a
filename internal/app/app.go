// Package app implements the application layer for imago.
package app

import (
	"context"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports"
	"go.trai.ch/imago/internal/engine/executor"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     *executor.Executor
	journal      ports.Journal
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, exec *executor.Executor, jrnl ports.Journal) *App {
	return &App{
		configLoader: loader,
		executor:     exec,
		journal:      jrnl,
	}
}

// SetConfigFile points the loader at an alternate target file.
func (a *App) SetConfigFile(name string) {
	if name != "" {
		a.configLoader.SetFile(name)
	}
}

// Build executes the build run for the requested targets.
//
// Requests are validated against the registry before anything is built, and
// then executed in registry declaration order regardless of argument order.
func (a *App) Build(ctx context.Context, targetNames []string, opts domain.BuildOptions) error {
	reg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load target configuration")
	}

	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	names := make([]domain.InternedString, len(targetNames))
	for i, n := range targetNames {
		names[i] = domain.NewInternedString(n)
	}

	// Reject unknown names up front so a typo cannot abort a run halfway.
	for _, name := range names {
		if _, err := reg.Resolve(name); err != nil {
			return err
		}
	}

	for _, name := range reg.SortRequested(names) {
		if err := a.executor.EnsureBuilt(ctx, reg, name, opts); err != nil {
			return zerr.Wrap(err, "build run failed")
		}
	}

	return nil
}

// PullAll fetches every publishable target's image from the remote registry.
func (a *App) PullAll(ctx context.Context) error {
	reg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load target configuration")
	}

	if err := a.executor.PullAll(ctx, reg); err != nil {
		return zerr.Wrap(err, "pull run failed")
	}
	return nil
}

// Targets returns the registered targets in declaration order.
func (a *App) Targets() ([]domain.Target, error) {
	reg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load target configuration")
	}

	out := make([]domain.Target, 0, reg.TargetCount())
	for t := range reg.Walk() {
		out = append(out, t)
	}
	return out, nil
}

// Status returns the journal entries, latest outcome per target.
func (a *App) Status() ([]domain.RunRecord, error) {
	return a.journal.List()
}
