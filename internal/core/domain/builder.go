package domain

import (
	"slices"
	"time"
)

// StepKind identifies the role a step plays inside a builder.
type StepKind string

const (
	// StepDownload fetches the emulator build. Its definition is opaque to reel.
	StepDownload StepKind = "download"
	// StepSync mirrors a target's game data from the store.
	StepSync StepKind = "sync"
	// StepTest runs the emulator against one movie.
	StepTest StepKind = "test"
)

// Step is one unit of work inside a builder.
// It is a declarative description; enforcing timeouts and signals is the job of
// whoever executes it.
type Step struct {
	Kind            StepKind
	Name            string
	Description     string
	DescriptionDone string
	Command         []string
	// Env holds environment overrides in "KEY=VALUE" format.
	Env []string
	// WorkDir is relative to the builder's root directory.
	WorkDir string
	// Timeout is the longest the step may run without producing output.
	Timeout time.Duration
	// MaxTime is a hard cap on the step's total run time.
	MaxTime time.Duration
	// InterruptSignal is the signal name sent when a timeout fires, e.g. "QUIT".
	InterruptSignal string
	// LogEnviron controls whether the executor logs the step environment before running.
	LogEnviron bool
}

// Builder is a named unit bundling a worker pool assignment and an ordered list of steps.
type Builder struct {
	Name string
	// WorkerNames uses InternedString since every builder usually shares the same pool.
	WorkerNames []InternedString
	Steps       []Step
}

// StepsOfKind returns the builder's steps of the given kind, in order.
func (b *Builder) StepsOfKind(kind StepKind) []Step {
	var steps []Step
	for _, s := range b.Steps {
		if s.Kind == kind {
			steps = append(steps, s)
		}
	}
	return steps
}

// SyncStep returns the builder's synchronization step.
func (b *Builder) SyncStep() (Step, bool) {
	idx := slices.IndexFunc(b.Steps, func(s Step) bool { return s.Kind == StepSync })
	if idx < 0 {
		return Step{}, false
	}
	return b.Steps[idx], true
}

// TestStep returns the test step that plays the given movie.
func (b *Builder) TestStep(movie string) (Step, bool) {
	idx := slices.IndexFunc(b.Steps, func(s Step) bool { return s.Kind == StepTest && s.Name == movie })
	if idx < 0 {
		return Step{}, false
	}
	return b.Steps[idx], true
}

// Workers returns the worker names as plain strings.
func (b *Builder) Workers() []string {
	names := make([]string, len(b.WorkerNames))
	for i, w := range b.WorkerNames {
		names[i] = w.String()
	}
	return names
}
