package app

import (
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/engine/generator"
	"go.trai.ch/zerr"
)

// Workspace is everything derived from one settings file: the resolved settings,
// the loaded targets and the builders generated from them.
type Workspace struct {
	Settings  *domain.Settings
	Targets   []domain.TestTarget
	Builders  *domain.BuilderSet
	Generator *generator.Generator

	byBuilder map[string]int
}

func newWorkspace(settings *domain.Settings, targets []domain.TestTarget) (*Workspace, error) {
	gen := generator.New(generator.OptionsFromSettings(settings))
	builders, err := gen.Builders(targets, settings.Workers)
	if err != nil {
		return nil, err
	}

	byBuilder := make(map[string]int, len(targets))
	for i := range targets {
		byBuilder[targets[i].BuilderName()] = i
	}

	return &Workspace{
		Settings:  settings,
		Targets:   targets,
		Builders:  builders,
		Generator: gen,
		byBuilder: byBuilder,
	}, nil
}

// Target returns the target a builder was generated from.
func (w *Workspace) Target(builderName string) (*domain.TestTarget, bool) {
	i, ok := w.byBuilder[builderName]
	if !ok {
		return nil, false
	}
	return &w.Targets[i], true
}

// Builder returns the named builder, or ErrBuilderNotFound.
func (w *Workspace) Builder(name string) (domain.Builder, error) {
	b, ok := w.Builders.Get(name)
	if !ok {
		return domain.Builder{}, zerr.With(domain.ErrBuilderNotFound, "builder", name)
	}
	return b, nil
}

// Directories returns the target directories in target order.
func (w *Workspace) Directories() []string {
	dirs := make([]string, len(w.Targets))
	for i := range w.Targets {
		dirs[i] = w.Targets[i].Directory
	}
	return dirs
}
