package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/adapters/store"
	"go.trai.ch/reel/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.NewStore()

	record := domain.SyncRecord{
		BuilderName: "Foo:win (D3)",
		SourceHash:  "abc",
		Timestamp:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, s.Put(root, record))

		got, err := s.Get(root, "Foo:win (D3)")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := s.Get(root, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_PutOverwrites(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	require.NoError(t, s.Put(root, domain.SyncRecord{BuilderName: "b", SourceHash: "one"}))
	require.NoError(t, s.Put(root, domain.SyncRecord{BuilderName: "b", SourceHash: "two"}))

	got, err := s.Get(root, "b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "two", got.SourceHash)

	entries, err := os.ReadDir(filepath.Join(root, domain.DefaultStorePath()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "expected a single record file without leftovers")
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	require.NoError(t, s.Put(root, domain.SyncRecord{BuilderName: "b"}))

	dir := filepath.Join(root, domain.DefaultStorePath())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // Test file permissions
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, err = s.Get(root, "b")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutCreateFailure(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	// A plain file where the state directory should be blocks MkdirAll.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ReelDirName), []byte("x"), 0o600))

	err := s.Put(root, domain.SyncRecord{BuilderName: "b"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
