// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/imago/internal/core/domain"
)

// ImageBuilder is the opaque build backend invoked once per missing or
// explicitly requested target.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ImageBuilder interface {
	// Build produces the target's image from its build context.
	//
	// The call blocks until the backend finishes. Options carry the
	// run-level no-cache toggle and build-arg overrides; the builder is
	// responsible for merging them with the target's own args.
	//
	// A non-zero backend outcome is returned as an error wrapping
	// domain.ErrBuildFailed.
	Build(ctx context.Context, target *domain.Target, opts domain.BuildOptions) error
}
