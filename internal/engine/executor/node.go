package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imago/internal/adapters/docker"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imago/internal/adapters/journal" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imago/internal/adapters/term"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/imago/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			docker.BuilderNodeID,
			docker.PullerNodeID,
			docker.StoreNodeID,
			term.NodeID,
			journal.NodeID,
		},
		Run: func(ctx context.Context) (*Executor, error) {
			builder, err := graft.Dep[ports.ImageBuilder](ctx)
			if err != nil {
				return nil, err
			}

			puller, err := graft.Dep[ports.ImagePuller](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ImageStore](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			jrnl, err := graft.Dep[ports.Journal](ctx)
			if err != nil {
				return nil, err
			}

			return New(builder, puller, store, reporter, jrnl), nil
		},
	})
}
