package docker

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements the existence oracle against the local docker daemon.
//
// The query is `docker images -q --filter reference=TAG`: a typed check on
// exit status and stdout rather than substring matching of human-readable
// listings. A failing command means the daemon could not be asked at all and
// is reported as such, never as "image missing".
type Store struct {
	bin string
}

// NewStore creates a Store querying the local daemon.
func NewStore() *Store {
	return &Store{bin: "docker"}
}

// Exists reports whether an image matching the tag is present locally.
func (s *Store) Exists(ctx context.Context, tag string) (bool, error) {
	cmd := exec.CommandContext(ctx, s.bin, "images", "-q", "--filter", "reference="+tag) //nolint:gosec // tag comes from the static registry

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e := zerr.With(domain.ErrOracleUnavailable, "tag", tag)
		return false, zerr.With(e, "cause", strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()) != "", nil
}
