package docker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imago/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/imago/internal/adapters/term"   //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/imago/internal/core/ports"
)

const (
	// BuilderNodeID is the unique identifier for the image builder Graft node.
	BuilderNodeID graft.ID = "adapter.image_builder"
	// PullerNodeID is the unique identifier for the image puller Graft node.
	PullerNodeID graft.ID = "adapter.image_puller"
	// StoreNodeID is the unique identifier for the image store Graft node.
	StoreNodeID graft.ID = "adapter.image_store"
)

func init() {
	graft.Register(graft.Node[ports.ImageBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{term.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ImageBuilder, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(reporter, log), nil
		},
	})

	graft.Register(graft.Node[ports.ImagePuller]{
		ID:        PullerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{term.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ImagePuller, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPuller(reporter, log), nil
		},
	})

	graft.Register(graft.Node[ports.ImageStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ImageStore, error) {
			return NewStore(), nil
		},
	})
}
