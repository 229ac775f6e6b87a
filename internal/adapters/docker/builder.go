// Package docker adapts the image builder, puller and store ports to the
// docker CLI.
package docker

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.ImageBuilder by shelling out to `docker build`.
type Builder struct {
	bin      string
	reporter ports.Reporter
	logger   ports.Logger
}

// NewBuilder creates a Builder streaming build output through the reporter.
func NewBuilder(reporter ports.Reporter, logger ports.Logger) *Builder {
	return &Builder{
		bin:      "docker",
		reporter: reporter,
		logger:   logger,
	}
}

// Build runs `docker build` for the target and blocks until it finishes.
func (b *Builder) Build(ctx context.Context, target *domain.Target, opts domain.BuildOptions) error {
	args := buildArgs(target, opts)

	b.logger.Info("exec: " + b.bin + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, b.bin, args...) //nolint:gosec // args come from the static registry
	cmd.Stdout = b.reporter.Stdout()
	cmd.Stderr = b.reporter.Stderr()

	if err := cmd.Run(); err != nil {
		return buildError(err, target.Name.String())
	}
	return nil
}

// buildArgs constructs the docker build argument list for a target.
func buildArgs(target *domain.Target, opts domain.BuildOptions) []string {
	args := []string{"build", "--tag", target.Tag}

	if target.Dockerfile != "" {
		args = append(args, "--file", target.Dockerfile)
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}

	// Sorted for a stable command line; docker does not care, logs and tests do.
	merged := opts.EffectiveArgs(target)
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--build-arg", fmt.Sprintf("%s=%s", k, merged[k]))
	}

	buildContext := target.Context
	if buildContext == "" {
		buildContext = "."
	}
	args = append(args, buildContext)

	return args
}

// buildError maps a docker CLI failure onto the build error taxonomy,
// preserving the exit code when there is one.
func buildError(err error, target string) error {
	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	e := zerr.With(domain.ErrBuildFailed, "target", target)
	e = zerr.With(e, "exit_code", exitCode)
	return zerr.With(e, "cause", err.Error())
}
