package ports

import "go.trai.ch/reel/internal/core/domain"

// SyncStore defines the interface for storing and retrieving sync records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SyncStore interface {
	// Get retrieves the sync record of a builder stored under root.
	// Returns nil, nil if not found.
	Get(root, builderName string) (*domain.SyncRecord, error)

	// Put stores the sync record under root.
	Put(root string, record domain.SyncRecord) error
}
