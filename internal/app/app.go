// Package app implements the application layer for reel.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/reel/internal/engine/generator"
	"go.trai.ch/reel/internal/engine/syncer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settingsLoader ports.SettingsLoader
	targetLoader   ports.TargetLoader
	encoder        ports.ManifestEncoder
	verifier       ports.SourceVerifier
	executor       ports.Executor
	syncer         *syncer.Syncer
	logger         ports.Logger
	out            io.Writer
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	targetLoader ports.TargetLoader,
	encoder ports.ManifestEncoder,
	verifier ports.SourceVerifier,
	executor ports.Executor,
	syncRunner *syncer.Syncer,
	log ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		targetLoader:   targetLoader,
		encoder:        encoder,
		verifier:       verifier,
		executor:       executor,
		syncer:         syncRunner,
		logger:         log,
		out:            os.Stdout,
	}
}

// WithOutput sets where manifests, listings and result tables are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Load resolves settings from configPath, loads the targets and generates their builders.
func (a *App) Load(configPath string) (*Workspace, error) {
	settings, err := a.settingsLoader.Load(configPath)
	if err != nil {
		return nil, err
	}

	targets, err := a.targetLoader.Load(settings.BaseDir)
	if err != nil {
		return nil, err
	}

	return newWorkspace(settings, targets)
}

// Render writes the builder manifest in the given format.
func (a *App) Render(_ context.Context, configPath, format string) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}
	return a.encoder.Encode(a.out, ws.Builders, format)
}

// List writes a table of the generated builders.
func (a *App) List(_ context.Context, configPath string) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}
	return writeBuilderTable(a.out, ws)
}

// Command writes the emulator command a builder runs for movie.
func (a *App) Command(_ context.Context, configPath, builderName, movie string) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}

	b, err := ws.Builder(builderName)
	if err != nil {
		return err
	}
	step, ok := b.TestStep(movie)
	if !ok {
		return zerr.With(zerr.With(domain.ErrMovieNotFound, "builder", builderName), "movie", movie)
	}

	_, err = fmt.Fprintln(a.out, shellJoin(step.Command))
	return err
}

// Validate loads and generates every builder, then checks that each target's data
// exists in the store. Missing data is reported but does not fail validation.
func (a *App) Validate(_ context.Context, configPath string) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}

	missing, err := a.verifier.MissingSources(ws.Settings.BaseDir, ws.Directories())
	if err != nil {
		return err
	}
	for _, dir := range missing {
		a.logger.Warn("source directory missing: " + dir)
	}

	a.logger.Success(fmt.Sprintf("%d targets, %d builders", len(ws.Targets), ws.Builders.Len()))
	return nil
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	Force bool
	Jobs  int
}

// Sync runs the sync step of the named builders, or of every builder when none are named.
func (a *App) Sync(ctx context.Context, configPath string, builderNames []string, opts SyncOptions) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}

	if len(builderNames) == 0 {
		builderNames = ws.Builders.Names()
	}

	jobs := make([]syncer.Job, 0, len(builderNames))
	for _, name := range builderNames {
		b, err := ws.Builder(name)
		if err != nil {
			return err
		}
		target, _ := ws.Target(name)
		step, _ := b.SyncStep()
		jobs = append(jobs, syncer.Job{
			Builder:     b,
			Source:      generator.SyncSource(ws.Settings.BaseDir, target.Directory),
			Destination: filepath.Join(ws.Settings.Root, step.WorkDir, target.Directory),
		})
	}

	results, runErr := a.syncer.Run(ctx, jobs, syncer.Options{
		Root:  ws.Settings.Root,
		Force: opts.Force,
		Jobs:  opts.Jobs,
	})
	if err := writeResultTable(a.out, results); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// Exec runs a builder's test steps locally, one after another.
// With no movies named, every test step runs in builder order.
func (a *App) Exec(ctx context.Context, configPath, builderName string, movies []string) error {
	ws, err := a.Load(configPath)
	if err != nil {
		return err
	}

	b, err := ws.Builder(builderName)
	if err != nil {
		return err
	}

	steps, err := selectTestSteps(&b, movies)
	if err != nil {
		return err
	}

	results := make([]domain.StepResult, 0, len(steps))
	for i := range steps {
		if ctx.Err() != nil {
			break
		}
		results = append(results, a.runTestStep(ctx, b.Name, &steps[i], ws.Settings.Root))
	}

	if err := writeResultTable(a.out, results); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Status.IsFailure() {
			failed++
		}
	}
	if failed > 0 {
		return zerr.With(zerr.With(domain.ErrTestStepsFailed, "builder", b.Name), "failed", failed)
	}
	return nil
}

func (a *App) runTestStep(ctx context.Context, builder string, step *domain.Step, root string) domain.StepResult {
	a.logger.Info("running " + step.Description)

	start := time.Now()
	err := a.executor.Execute(ctx, step, root)
	res := domain.StepResult{
		Builder:  builder,
		Step:     step.Name,
		Status:   domain.StatusFromError(err),
		Duration: time.Since(start),
		Err:      err,
	}

	if err != nil {
		a.logger.Error(err)
		return res
	}
	a.logger.Success(fmt.Sprintf("%s (%s)", step.DescriptionDone, res.Duration.Round(time.Millisecond)))
	return res
}

func selectTestSteps(b *domain.Builder, movies []string) ([]domain.Step, error) {
	if len(movies) == 0 {
		return b.StepsOfKind(domain.StepTest), nil
	}

	steps := make([]domain.Step, 0, len(movies))
	for _, movie := range movies {
		step, ok := b.TestStep(movie)
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrMovieNotFound, "builder", b.Name), "movie", movie)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// shellJoin renders a command vector as a single shell-pasteable line.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"\\$`;&|*?()<>") {
			quoted[i] = strconv.Quote(arg)
			continue
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
