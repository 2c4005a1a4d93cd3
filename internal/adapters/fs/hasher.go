package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for source trees and builder definitions.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash computes a single hash over every file below dir.
// Paths are hashed relative to dir so the digest does not depend on where the store is mounted.
func (h *Hasher) ComputeTreeHash(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", dir)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "path", dir)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrSourceNotFound, "path", dir)
	}

	hasher := xxhash.New()
	for path := range h.walker.WalkFiles(dir, nil) {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "path", path)
		}
		if err := h.hashFile(path, filepath.ToSlash(rel), hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFile(path, name string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(name))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

// ComputeBuilderHash computes a fingerprint over every field of a builder and its steps.
func (h *Hasher) ComputeBuilderHash(builder *domain.Builder) string {
	hasher := xxhash.New()

	writeField(hasher, builder.Name)
	for _, w := range builder.WorkerNames {
		writeField(hasher, w.String())
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for i := range builder.Steps {
		hashStep(hasher, &builder.Steps[i])
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashStep(hasher *xxhash.Digest, step *domain.Step) {
	writeField(hasher, string(step.Kind))
	writeField(hasher, step.Name)
	writeField(hasher, step.Description)
	writeField(hasher, step.DescriptionDone)

	for _, arg := range step.Command {
		writeField(hasher, arg)
	}
	_, _ = hasher.Write([]byte{0})

	for _, kv := range step.Env {
		writeField(hasher, kv)
	}
	_, _ = hasher.Write([]byte{0})

	writeField(hasher, step.WorkDir)
	writeField(hasher, strconv.FormatInt(int64(step.Timeout), 10))
	writeField(hasher, strconv.FormatInt(int64(step.MaxTime), 10))
	writeField(hasher, step.InterruptSignal)
	writeField(hasher, strconv.FormatBool(step.LogEnviron))
	_, _ = hasher.Write([]byte{0})
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}
