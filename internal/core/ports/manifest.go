package ports

import (
	"io"

	"go.trai.ch/reel/internal/core/domain"
)

// ManifestEncoder defines the interface for rendering builders for the orchestration host.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestEncoder interface {
	// Encode writes the builder set to w in the given format ("yaml" or "json").
	Encode(w io.Writer, builders *domain.BuilderSet, format string) error
}
