package ports

import "go.trai.ch/reel/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeTreeHash computes a digest over the relative paths and contents of every file under dir.
	ComputeTreeHash(dir string) (string, error)

	// ComputeBuilderHash computes a fingerprint of a builder definition.
	ComputeBuilderHash(builder *domain.Builder) string
}
