package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/logger"
	"go.trai.ch/reel/internal/core/ports"
)

const (
	// TargetLoaderNodeID is the unique identifier for the target loader Graft node.
	TargetLoaderNodeID graft.ID = "adapter.config.targets"
	// SettingsLoaderNodeID is the unique identifier for the settings loader Graft node.
	SettingsLoaderNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.TargetLoader]{
		ID:        TargetLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetLoader, error) {
			return NewTargetLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettingsLoader(log), nil
		},
	})
}
