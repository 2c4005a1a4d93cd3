// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reel/internal/adapters/config"
	_ "go.trai.ch/reel/internal/adapters/fs"
	_ "go.trai.ch/reel/internal/adapters/logger"
	_ "go.trai.ch/reel/internal/adapters/manifest"
	_ "go.trai.ch/reel/internal/adapters/shell"
	_ "go.trai.ch/reel/internal/adapters/store"
	// Register app and engine nodes.
	_ "go.trai.ch/reel/internal/app"
	_ "go.trai.ch/reel/internal/engine/syncer"
)
