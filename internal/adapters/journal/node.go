package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imago/internal/core/ports"
)

const NodeID graft.ID = "adapter.journal"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Journal, error) {
			store, err := NewStore(DefaultPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
