package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reel/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/reel/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reel/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/reel/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/syncer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsLoaderNodeID,
			config.TargetLoaderNodeID,
			manifest.NodeID,
			fs.VerifierNodeID,
			shell.NodeID,
			syncer.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    a,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	targetLoader, err := graft.Dep[ports.TargetLoader](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.ManifestEncoder](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.SourceVerifier](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	syncRunner, err := graft.Dep[*syncer.Syncer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settingsLoader, targetLoader, encoder, verifier, executor, syncRunner, log), nil
}
