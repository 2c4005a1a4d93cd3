// Package domain contains the core domain models for test targets and the builders generated from them.
package domain

import (
	"fmt"
	"slices"
)

// DefaultDebugFlags are passed to the emulator when a target does not declare its own.
const DefaultDebugFlags = "fewframesonly,fast"

// TestTarget describes one game/platform/version combination to test.
// Targets are built once by the target loader and treated as read-only afterwards.
type TestTarget struct {
	Name      string
	Directory string
	GameID    string
	Platform  string
	Version   string
	// MovieNames is ordered; the order is the test execution order.
	MovieNames []string
	// DebugFlags is passed as --debugflags. An empty value omits the flag.
	DebugFlags string
}

// NewTestTarget creates a TestTarget, copying movieNames so later changes to the
// caller's slice do not leak into the target.
func NewTestTarget(name, directory, gameID, platform, version string, movieNames []string, debugFlags string) TestTarget {
	return TestTarget{
		Name:       name,
		Directory:  directory,
		GameID:     gameID,
		Platform:   platform,
		Version:    version,
		MovieNames: slices.Clone(movieNames),
		DebugFlags: debugFlags,
	}
}

// BuilderName returns the name the orchestration host registers the target's builder under.
func (t TestTarget) BuilderName() string {
	return fmt.Sprintf("%s:%s (%s)", t.Name, t.Platform, t.Version)
}

// HasMovie reports whether the target declares the given movie.
func (t TestTarget) HasMovie(movie string) bool {
	return slices.Contains(t.MovieNames, movie)
}
