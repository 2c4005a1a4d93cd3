package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/core/ports"
)

// NodeID is the unique identifier for the sync record store Graft node.
const NodeID graft.ID = "adapter.sync_store"

func init() {
	graft.Register(graft.Node[ports.SyncStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SyncStore, error) {
			return NewStore(), nil
		},
	})
}
