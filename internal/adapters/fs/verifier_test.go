package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/adapters/fs"
)

func TestVerifier_MissingSources(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "warlock-win"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "spyclub-mac"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notadir"), []byte("content"), 0o600))

	// Case 1: All sources exist
	missing, err := verifier.MissingSources(tmpDir, []string{"warlock-win", "spyclub-mac/"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	// Case 2: Missing directories and plain files are reported in input order
	missing, err = verifier.MissingSources(tmpDir, []string{"gone", "warlock-win", "notadir"})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone", "notadir"}, missing)
}
