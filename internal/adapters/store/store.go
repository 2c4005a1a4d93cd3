// Package store persists sync records, one JSON file per builder.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SyncStore = (*Store)(nil)

// Store implements ports.SyncStore using a file-per-builder strategy below root.
type Store struct{}

// NewStore creates a new SyncStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the sync record of a builder.
func (s *Store) Get(root, builderName string) (*domain.SyncRecord, error) {
	filename := s.getFilename(root, builderName)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "builder", builderName)
	}

	var record domain.SyncRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "builder", builderName)
	}

	return &record, nil
}

// Put stores the sync record, replacing any previous record of the same builder.
func (s *Store) Put(root string, record domain.SyncRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, record.BuilderName)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write then rename so a concurrent reader never sees a partial record.
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, builderName string) string {
	hash := sha256.Sum256([]byte(builderName))
	hexHash := hex.EncodeToString(hash[:])
	return filepath.Join(root, domain.DefaultStorePath(), hexHash+".json")
}
