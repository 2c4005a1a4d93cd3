package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/adapters/fs"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   ignored/file
	//   MOVIES/A.MMM
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "MOVIES", "A.MMM"), "movie")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()

	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = true
	}

	assert.False(t, files[".git/config"], "expected .git/config to be skipped")
	assert.False(t, files["ignored/file"], "expected ignored/file to be skipped")
	assert.True(t, files["MOVIES/A.MMM"], "expected MOVIES/A.MMM to be found")
	assert.True(t, files["README.md"], "expected README.md to be found")
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")
}

func TestHasher_ComputeTreeHash(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	dirA := filepath.Join(t.TempDir(), "warlock-win")
	dirB := filepath.Join(t.TempDir(), "elsewhere", "warlock-win")
	for _, dir := range []string{dirA, dirB} {
		writeFile(t, filepath.Join(dir, "WARLOCK.EXE"), "exe")
		writeFile(t, filepath.Join(dir, "DATA", "ATD.DIR"), "dir")
	}

	hashA, err := hasher.ComputeTreeHash(dirA)
	require.NoError(t, err)
	assert.Len(t, hashA, 16)

	// 1. Same content under a different location gives the same digest
	hashB, err := hasher.ComputeTreeHash(dirB)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)

	// 2. A trailing separator does not change the digest
	hashSlash, err := hasher.ComputeTreeHash(dirA + string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, hashA, hashSlash)

	// 3. Content changes change the digest
	writeFile(t, filepath.Join(dirB, "DATA", "ATD.DIR"), "changed")
	hashChanged, err := hasher.ComputeTreeHash(dirB)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashChanged)

	// 4. Renames change the digest
	require.NoError(t, os.Rename(filepath.Join(dirA, "WARLOCK.EXE"), filepath.Join(dirA, "WARLOCK2.EXE")))
	hashRenamed, err := hasher.ComputeTreeHash(dirA)
	require.NoError(t, err)
	assert.NotEqual(t, hashB, hashRenamed)
}

func TestHasher_ComputeTreeHash_Missing(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := hasher.ComputeTreeHash(missing)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrSourceNotFound.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, missing, zErr.Metadata()["path"])
}

func TestHasher_ComputeBuilderHash(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())

	newBuilder := func() *domain.Builder {
		return &domain.Builder{
			Name:        "Foo:win (D3)",
			WorkerNames: domain.NewInternedStrings([]string{"w1"}),
			Steps: []domain.Step{
				{Kind: domain.StepSync, Name: "rsync", Command: []string{"rsync", "-av"}},
				{
					Kind:            domain.StepTest,
					Name:            "A.MMM",
					Command:         []string{"../scummvm", "--start-movie=A.MMM", "foo"},
					Timeout:         20 * time.Second,
					MaxTime:         30 * time.Second,
					InterruptSignal: "QUIT",
				},
			},
		}
	}

	base := hasher.ComputeBuilderHash(newBuilder())
	assert.Len(t, base, 16)
	assert.Equal(t, base, hasher.ComputeBuilderHash(newBuilder()), "expected deterministic fingerprint")

	tests := []struct {
		name   string
		mutate func(b *domain.Builder)
	}{
		{"Name", func(b *domain.Builder) { b.Name = "Foo:mac (D3)" }},
		{"Workers", func(b *domain.Builder) { b.WorkerNames = domain.NewInternedStrings([]string{"w2"}) }},
		{"Command", func(b *domain.Builder) { b.Steps[1].Command[2] = "bar" }},
		{"Timeout", func(b *domain.Builder) { b.Steps[1].Timeout = time.Minute }},
		{"Signal", func(b *domain.Builder) { b.Steps[1].InterruptSignal = "TERM" }},
		{"Env", func(b *domain.Builder) { b.Steps[1].Env = []string{"SDL_VIDEODRIVER=dummy"} }},
		{"CommandSplit", func(b *domain.Builder) { b.Steps[0].Command = []string{"rsync -av"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder()
			tt.mutate(b)
			assert.NotEqual(t, base, hasher.ComputeBuilderHash(b))
		})
	}
}
