// Package executor implements the sequential build-graph runner.
package executor

import (
	"context"
	"time"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports"
	"go.trai.ch/zerr"
)

// TargetStatus represents the status of a target within a run.
type TargetStatus string

const (
	// StatusPending indicates the target has not been touched yet.
	StatusPending TargetStatus = "Pending"
	// StatusBuilding indicates the target's build action is running.
	StatusBuilding TargetStatus = "Building"
	// StatusBuilt indicates the build action finished successfully.
	StatusBuilt TargetStatus = "Built"
	// StatusSkipped indicates the target was an already-existing prerequisite.
	StatusSkipped TargetStatus = "Skipped"
	// StatusFailed indicates the build or pull action failed.
	StatusFailed TargetStatus = "Failed"
)

// Executor runs build actions over a target registry, one at a time.
//
// Execution is strictly sequential: a build or pull blocks until the backend
// finishes, and the first failure aborts the whole run. There is no
// memoization across EnsureBuilt calls; the existence check is repeated on
// purpose because the registry is small and the query is cheap.
type Executor struct {
	builder  ports.ImageBuilder
	puller   ports.ImagePuller
	store    ports.ImageStore
	reporter ports.Reporter
	journal  ports.Journal

	status map[domain.InternedString]TargetStatus
}

// New creates a new Executor.
func New(
	builder ports.ImageBuilder,
	puller ports.ImagePuller,
	store ports.ImageStore,
	reporter ports.Reporter,
	journal ports.Journal,
) *Executor {
	return &Executor{
		builder:  builder,
		puller:   puller,
		store:    store,
		reporter: reporter,
		journal:  journal,
		status:   make(map[domain.InternedString]TargetStatus),
	}
}

// EnsureBuilt builds the named target after bringing its missing
// prerequisites into existence in declared order.
//
// The requested target itself is always built: an explicit request is the
// operator saying the image is stale. Only prerequisites get the existence
// short-circuit.
func (e *Executor) EnsureBuilt(ctx context.Context, reg *domain.Registry, name domain.InternedString, opts domain.BuildOptions) error {
	target, err := reg.Resolve(name)
	if err != nil {
		return err
	}

	for _, pre := range target.Prerequisites {
		if err := e.ensurePrerequisite(ctx, reg, pre, opts); err != nil {
			return err
		}
	}

	return e.build(ctx, &target, opts)
}

// ensurePrerequisite makes the prerequisite's image exist, building it and
// its own missing ancestors only when the image store does not have it.
func (e *Executor) ensurePrerequisite(ctx context.Context, reg *domain.Registry, name domain.InternedString, opts domain.BuildOptions) error {
	target, err := reg.Resolve(name)
	if err != nil {
		return err
	}

	exists, err := e.store.Exists(ctx, target.Tag)
	if err != nil {
		// An unreachable store is an infrastructure failure, never a
		// license to rebuild.
		return err
	}
	if exists {
		e.status[target.Name] = StatusSkipped
		e.reporter.Skipped(target.Name.String(), target.Tag)
		return e.record(&target, domain.OutcomeSkipped, opts, 0)
	}

	for _, pre := range target.Prerequisites {
		if err := e.ensurePrerequisite(ctx, reg, pre, opts); err != nil {
			return err
		}
	}

	return e.build(ctx, &target, opts)
}

// build invokes the build action bracketed by start/finish reporting.
func (e *Executor) build(ctx context.Context, target *domain.Target, opts domain.BuildOptions) error {
	e.status[target.Name] = StatusBuilding
	e.reporter.BuildStarted(target.Name.String(), target.Tag)

	start := time.Now()
	if err := e.builder.Build(ctx, target, opts); err != nil {
		e.status[target.Name] = StatusFailed
		// The build error wins; a failed journal write must not mask it.
		_ = e.record(target, domain.OutcomeFailed, opts, time.Since(start))
		return zerr.With(err, "target", target.Name.String())
	}
	elapsed := time.Since(start)

	e.status[target.Name] = StatusBuilt
	e.reporter.BuildFinished(target.Name.String(), elapsed)
	return e.record(target, domain.OutcomeBuilt, opts, elapsed)
}

// PullAll fetches every publishable target's image in declaration order.
//
// The dependency graph is ignored: published images are already
// dependency-resolved by whoever pushed them. The first failed pull aborts
// the run.
func (e *Executor) PullAll(ctx context.Context, reg *domain.Registry) error {
	for _, target := range reg.Publishable() {
		e.reporter.PullStarted(target.Tag)

		start := time.Now()
		if err := e.puller.Pull(ctx, target.Tag); err != nil {
			e.status[target.Name] = StatusFailed
			// The pull error wins; a failed journal write must not mask it.
			_ = e.record(&target, domain.OutcomeFailed, domain.BuildOptions{}, time.Since(start))
			return zerr.With(err, "target", target.Name.String())
		}
		elapsed := time.Since(start)

		e.status[target.Name] = StatusBuilt
		e.reporter.PullFinished(target.Tag, elapsed)
		if err := e.record(&target, domain.OutcomePulled, domain.BuildOptions{}, elapsed); err != nil {
			return err
		}
	}
	return nil
}

// Status returns the per-run status of a target. Targets never touched by
// the run report StatusPending.
func (e *Executor) Status(name domain.InternedString) TargetStatus {
	if s, ok := e.status[name]; ok {
		return s
	}
	return StatusPending
}

func (e *Executor) record(target *domain.Target, outcome domain.Outcome, opts domain.BuildOptions, elapsed time.Duration) error {
	if e.journal == nil {
		return nil
	}
	rec := domain.RunRecord{
		Target:        target.Name.String(),
		Tag:           target.Tag,
		Outcome:       outcome,
		OptionsDigest: OptionsDigest(target, opts),
		Duration:      elapsed,
		Timestamp:     time.Now(),
	}
	if err := e.journal.Record(rec); err != nil {
		return zerr.Wrap(err, "failed to journal run record")
	}
	return nil
}
