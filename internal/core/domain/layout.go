package domain

import "path/filepath"

const (
	// TargetsFileName is the name of the target list inside the targets base directory.
	TargetsFileName = "targets.json"

	// SettingsFileName is the default name of the settings file.
	SettingsFileName = "reel.yaml"

	// BaseDirEnvVar names the environment variable holding the targets base directory.
	BaseDirEnvVar = "TARGETS_BASEDIR"

	// BuildDirName is the builder-relative directory steps run in.
	BuildDirName = "build"

	// ReelDirName is the name of the internal state directory.
	ReelDirName = ".reel"

	// StoreDirName is the name of the sync record store directory.
	StoreDirName = "store"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStorePath returns the root-relative path of the sync record store.
// It joins .reel and store.
func DefaultStorePath() string {
	return filepath.Join(ReelDirName, StoreDirName)
}
