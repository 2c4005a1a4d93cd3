package syncer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/adapters/store"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reel/internal/core/ports"
)

// NodeID is the unique identifier for the syncer Graft node.
const NodeID graft.ID = "engine.syncer"

func init() {
	graft.Register(graft.Node[*Syncer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.HasherNodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Syncer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			syncStore, err := graft.Dep[ports.SyncStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, hasher, syncStore, log), nil
		},
	})
}
