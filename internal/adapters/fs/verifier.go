package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceVerifier = (*Verifier)(nil)

// Verifier checks that target directories exist in the game data store.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// MissingSources returns every dir that does not exist as a directory under baseDir.
func (v *Verifier) MissingSources(baseDir string, dirs []string) ([]string, error) {
	var missing []string
	for _, dir := range dirs {
		path := filepath.Join(baseDir, dir)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, dir)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat source directory"), "path", path)
		}
		if !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	return missing, nil
}
