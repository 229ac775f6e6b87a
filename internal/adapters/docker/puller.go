package docker

import (
	"context"
	"os/exec"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports"
	"go.trai.ch/zerr"
)

// Puller implements ports.ImagePuller by shelling out to `docker pull`.
type Puller struct {
	bin      string
	reporter ports.Reporter
	logger   ports.Logger
}

// NewPuller creates a Puller streaming pull output through the reporter.
func NewPuller(reporter ports.Reporter, logger ports.Logger) *Puller {
	return &Puller{
		bin:      "docker",
		reporter: reporter,
		logger:   logger,
	}
}

// Pull runs `docker pull` for the tag and blocks until it finishes.
func (p *Puller) Pull(ctx context.Context, tag string) error {
	p.logger.Info("exec: " + p.bin + " pull " + tag)

	cmd := exec.CommandContext(ctx, p.bin, "pull", tag) //nolint:gosec // tag comes from the static registry
	cmd.Stdout = p.reporter.Stdout()
	cmd.Stderr = p.reporter.Stderr()

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		e := zerr.With(domain.ErrPullFailed, "tag", tag)
		e = zerr.With(e, "exit_code", exitCode)
		return zerr.With(e, "cause", err.Error())
	}
	return nil
}
