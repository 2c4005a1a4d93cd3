package ports

import "go.trai.ch/reel/internal/core/domain"

// TargetLoader defines the interface for loading test targets.
//
//go:generate go run go.uber.org/mock/mockgen -source=target_loader.go -destination=mocks/mock_target_loader.go -package=mocks
type TargetLoader interface {
	// Load reads the targets file from baseDir.
	// It returns one target per array entry, or an error and no targets at all.
	Load(baseDir string) ([]domain.TestTarget, error)
}
