// Package config loads test targets and reel's runtime settings.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetLoader = (*TargetLoader)(nil)

// Keys of a target object in targets.json.
const (
	keyName       = "name"
	keyDirectory  = "directory"
	keyGameID     = "game_id"
	keyPlatform   = "platform"
	keyVersion    = "version"
	keyMovieNames = "movienames"
	keyDebugFlags = "debugflags"
)

// requiredKeys are checked in this order so the first reported problem is stable.
var requiredKeys = []string{keyName, keyDirectory, keyGameID, keyPlatform, keyVersion, keyMovieNames}

// TargetLoader implements ports.TargetLoader for targets.json.
type TargetLoader struct{}

// NewTargetLoader creates a new TargetLoader.
func NewTargetLoader() *TargetLoader {
	return &TargetLoader{}
}

// Load reads <baseDir>/targets.json.
// Every entry is validated; the first invalid entry fails the whole load.
func (l *TargetLoader) Load(baseDir string) ([]domain.TestTarget, error) {
	path := filepath.Join(baseDir, domain.TargetsFileName)

	//nolint:gosec // Path is built from the configured base directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTargetsReadFailed.Error()), "path", path)
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, zerr.With(domain.ErrTargetsParseFailed, "path", path)
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTargetsParseFailed.Error()), "path", path)
	}

	targets := make([]domain.TestTarget, 0, len(entries))
	for i, entry := range entries {
		target, err := decodeTarget(entry)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "index", i), "path", path)
		}
		targets = append(targets, target)
	}

	return targets, nil
}

func decodeTarget(entry map[string]json.RawMessage) (domain.TestTarget, error) {
	if entry == nil {
		return domain.TestTarget{}, domain.ErrTargetsParseFailed
	}

	// The name is decoded leniently first so later errors can say which target is broken.
	var name string
	_ = json.Unmarshal(entry[keyName], &name)
	withTarget := func(err error) error {
		if name == "" {
			return err
		}
		return zerr.With(err, "target", name)
	}

	for _, key := range requiredKeys {
		if _, ok := entry[key]; !ok {
			return domain.TestTarget{}, withTarget(zerr.With(domain.ErrMissingField, "field", key))
		}
	}

	if unknown := unknownKeys(entry); len(unknown) > 0 {
		return domain.TestTarget{}, withTarget(zerr.With(domain.ErrUnknownField, "field", unknown[0]))
	}

	fields := make(map[string]string, len(requiredKeys))
	for _, key := range []string{keyName, keyDirectory, keyGameID, keyPlatform, keyVersion} {
		value, err := decodeString(entry[key], key)
		if err != nil {
			return domain.TestTarget{}, withTarget(err)
		}
		if value == "" {
			return domain.TestTarget{}, withTarget(zerr.With(domain.ErrEmptyField, "field", key))
		}
		fields[key] = value
	}

	movies, err := decodeMovieNames(entry[keyMovieNames])
	if err != nil {
		return domain.TestTarget{}, withTarget(err)
	}

	debugFlags := domain.DefaultDebugFlags
	if raw, ok := entry[keyDebugFlags]; ok {
		if debugFlags, err = decodeString(raw, keyDebugFlags); err != nil {
			return domain.TestTarget{}, withTarget(err)
		}
	}

	return domain.NewTestTarget(
		fields[keyName],
		fields[keyDirectory],
		fields[keyGameID],
		fields[keyPlatform],
		fields[keyVersion],
		movies,
		debugFlags,
	), nil
}

func unknownKeys(entry map[string]json.RawMessage) []string {
	var unknown []string
	for key := range entry {
		if key == keyDebugFlags || slices.Contains(requiredKeys, key) {
			continue
		}
		unknown = append(unknown, key)
	}
	slices.Sort(unknown)
	return unknown
}

// decodeString rejects null as well as non-string values.
func decodeString(raw json.RawMessage, field string) (string, error) {
	if isNull(raw) {
		return "", zerr.With(domain.ErrInvalidField, "field", field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidField.Error()), "field", field)
	}
	return s, nil
}

func decodeMovieNames(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, zerr.With(domain.ErrInvalidField, "field", keyMovieNames)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidField.Error()), "field", keyMovieNames)
	}

	movies := make([]string, 0, len(items))
	for i, item := range items {
		field := keyMovieNames + "[" + strconv.Itoa(i) + "]"
		movie, err := decodeString(item, field)
		if err != nil {
			return nil, err
		}
		if movie == "" {
			return nil, zerr.With(domain.ErrEmptyField, "field", field)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
