// Package generator turns test targets into emulator commands and builder definitions.
package generator

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/reel/internal/core/domain"
)

const (
	// SyncStepName is the name of every builder's synchronization step.
	SyncStepName = "rsync"
	// SyncStepDescription describes the synchronization step on the orchestration host.
	SyncStepDescription = "Synchronise files with store"
)

// Options carries everything generation needs besides the target itself.
type Options struct {
	BaseDir         string
	Binary          string
	ConfigFile      string
	Env             []string
	Timeout         time.Duration
	MaxTime         time.Duration
	InterruptSignal string
	Download        domain.DownloadSettings
}

// OptionsFromSettings derives generation options from resolved settings.
func OptionsFromSettings(s *domain.Settings) Options {
	return Options{
		BaseDir:         s.BaseDir,
		Binary:          s.EmulatorBinary,
		ConfigFile:      s.EmulatorConfig,
		Env:             slices.Clone(s.Env),
		Timeout:         s.TestTimeout,
		MaxTime:         s.TestMaxTime,
		InterruptSignal: s.InterruptSignal,
		Download:        s.Download,
	}
}

// Command returns the emulator invocation that plays movie for target.
// The --debugflags argument is present only when the target has debug flags.
func Command(target *domain.TestTarget, movie string, opts *Options) []string {
	binary := opts.Binary
	if binary == "" {
		binary = domain.DefaultEmulatorBinary
	}
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = domain.DefaultEmulatorConfig
	}

	command := []string{binary, "-c", configFile, "--start-movie=" + movie}
	if target.DebugFlags != "" {
		command = append(command, "--debugflags="+target.DebugFlags)
	}
	return append(command, target.GameID)
}

// SyncSource returns the store path of a target's data with exactly one trailing separator,
// so rsync copies the directory's contents rather than the directory itself.
func SyncSource(baseDir, directory string) string {
	source := filepath.Join(baseDir, directory)
	return strings.TrimRight(source, string(filepath.Separator)) + string(filepath.Separator)
}

// SyncCommand returns the rsync invocation mirroring a target's data from the store.
func SyncCommand(target *domain.TestTarget, baseDir string) []string {
	return []string{"rsync", "-av", "--delete", SyncSource(baseDir, target.Directory), target.Directory}
}

// Generator builds builder definitions from targets.
type Generator struct {
	opts Options
}

// New creates a Generator with the given options.
func New(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Options returns the generator's options.
func (g *Generator) Options() Options {
	return g.opts
}

// Builder creates the builder for target: the download step, the sync step and
// one test step per movie, in that order.
func (g *Generator) Builder(target *domain.TestTarget, workers []string) domain.Builder {
	steps := make([]domain.Step, 0, 2+len(target.MovieNames))
	steps = append(steps, g.downloadStep(), g.syncStep(target))

	workDir := filepath.Join(domain.BuildDirName, target.Directory)
	for _, movie := range target.MovieNames {
		steps = append(steps, domain.Step{
			Kind:            domain.StepTest,
			Name:            movie,
			Description:     movie,
			DescriptionDone: movie,
			Command:         Command(target, movie, &g.opts),
			Env:             slices.Clone(g.opts.Env),
			WorkDir:         workDir,
			Timeout:         g.opts.Timeout,
			MaxTime:         g.opts.MaxTime,
			InterruptSignal: g.opts.InterruptSignal,
			LogEnviron:      false,
		})
	}

	return domain.Builder{
		Name:        target.BuilderName(),
		WorkerNames: domain.NewInternedStrings(workers),
		Steps:       steps,
	}
}

// Builders creates one builder per target, in target order.
// Two targets producing the same builder name fail the whole generation.
func (g *Generator) Builders(targets []domain.TestTarget, workers []string) (*domain.BuilderSet, error) {
	set := domain.NewBuilderSet()
	for i := range targets {
		b := g.Builder(&targets[i], workers)
		if err := set.AddBuilder(&b); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (g *Generator) syncStep(target *domain.TestTarget) domain.Step {
	return domain.Step{
		Kind:        domain.StepSync,
		Name:        SyncStepName,
		Description: SyncStepDescription,
		Command:     SyncCommand(target, g.opts.BaseDir),
		WorkDir:     domain.BuildDirName,
		LogEnviron:  false,
	}
}

// downloadStep is opaque: its content comes from settings unchanged.
func (g *Generator) downloadStep() domain.Step {
	d := g.opts.Download
	name := d.Name
	if name == "" {
		name = domain.DefaultDownloadStepName
	}
	return domain.Step{
		Kind:        domain.StepDownload,
		Name:        name,
		Description: d.Description,
		Command:     slices.Clone(d.Command),
		WorkDir:     d.WorkDir,
	}
}
