package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/app"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports/mocks"
	"go.trai.ch/reel/internal/engine/syncer"
	"go.uber.org/mock/gomock"
)

const configPath = "reel.yaml"

type fixture struct {
	settingsLoader *mocks.MockSettingsLoader
	targetLoader   *mocks.MockTargetLoader
	encoder        *mocks.MockManifestEncoder
	verifier       *mocks.MockSourceVerifier
	executor       *mocks.MockExecutor
	hasher         *mocks.MockHasher
	store          *mocks.MockSyncStore
	logger         *mocks.MockLogger
	out            *bytes.Buffer
	app            *app.App
	settings       *domain.Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		settingsLoader: mocks.NewMockSettingsLoader(ctrl),
		targetLoader:   mocks.NewMockTargetLoader(ctrl),
		encoder:        mocks.NewMockManifestEncoder(ctrl),
		verifier:       mocks.NewMockSourceVerifier(ctrl),
		executor:       mocks.NewMockExecutor(ctrl),
		hasher:         mocks.NewMockHasher(ctrl),
		store:          mocks.NewMockSyncStore(ctrl),
		logger:         mocks.NewMockLogger(ctrl),
		out:            &bytes.Buffer{},
	}

	settings := domain.DefaultSettings()
	settings.BaseDir = "/srv/director"
	settings.Root = t.TempDir()
	settings.Workers = []string{"director-1"}
	f.settings = &settings

	sync := syncer.New(f.executor, f.hasher, f.store, f.logger)
	f.app = app.New(f.settingsLoader, f.targetLoader, f.encoder, f.verifier, f.executor, sync, f.logger).
		WithOutput(f.out)
	return f
}

func testTargets() []domain.TestTarget {
	return []domain.TestTarget{
		domain.NewTestTarget("Foo", "foo-win", "foo", "win", "D3", []string{"A.MMM", "B.MMM"}, domain.DefaultDebugFlags),
		domain.NewTestTarget("Bar", "bar-mac", "bar", "mac", "D4", []string{"C.MMM"}, ""),
	}
}

func (f *fixture) expectLoad() {
	f.settingsLoader.EXPECT().Load(configPath).Return(f.settings, nil)
	f.targetLoader.EXPECT().Load("/srv/director").Return(testTargets(), nil)
}

func TestApp_Load(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	ws, err := f.app.Load(configPath)
	require.NoError(t, err)

	assert.Len(t, ws.Targets, 2)
	assert.Equal(t, []string{"Foo:win (D3)", "Bar:mac (D4)"}, ws.Builders.Names())
	assert.Equal(t, []string{"foo-win", "bar-mac"}, ws.Directories())

	target, ok := ws.Target("Bar:mac (D4)")
	require.True(t, ok)
	assert.Equal(t, "bar", target.GameID)

	b, err := ws.Builder("Foo:win (D3)")
	require.NoError(t, err)
	assert.Equal(t, []string{"director-1"}, b.Workers())
	assert.Len(t, b.Steps, 4)
}

func TestApp_Load_SettingsError(t *testing.T) {
	f := newFixture(t)
	f.settingsLoader.EXPECT().Load(configPath).Return(nil, domain.ErrMissingBaseDir)

	_, err := f.app.Load(configPath)
	assert.ErrorIs(t, err, domain.ErrMissingBaseDir)
}

func TestApp_Load_TargetsError(t *testing.T) {
	f := newFixture(t)
	f.settingsLoader.EXPECT().Load(configPath).Return(f.settings, nil)
	f.targetLoader.EXPECT().Load("/srv/director").Return(nil, domain.ErrMissingField)

	_, err := f.app.Load(configPath)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestApp_Load_DuplicateBuilder(t *testing.T) {
	f := newFixture(t)
	f.settingsLoader.EXPECT().Load(configPath).Return(f.settings, nil)
	dup := testTargets()[0]
	f.targetLoader.EXPECT().Load("/srv/director").Return([]domain.TestTarget{dup, dup}, nil)

	_, err := f.app.Load(configPath)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDuplicateBuilder.Error())
}

func TestApp_Load_UnknownBuilder(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	ws, err := f.app.Load(configPath)
	require.NoError(t, err)

	_, err = ws.Builder("Nope:win (D3)")
	assert.ErrorContains(t, err, domain.ErrBuilderNotFound.Error())
	_, ok := ws.Target("Nope:win (D3)")
	assert.False(t, ok)
}

func TestApp_Render(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()
	f.encoder.EXPECT().Encode(f.out, gomock.Any(), "json").DoAndReturn(
		func(_ any, builders *domain.BuilderSet, _ string) error {
			assert.Equal(t, 2, builders.Len())
			return nil
		})

	require.NoError(t, f.app.Render(context.Background(), configPath, "json"))
}

func TestApp_Render_EncodeError(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()
	f.encoder.EXPECT().Encode(gomock.Any(), gomock.Any(), "toml").Return(domain.ErrUnsupportedFormat)

	err := f.app.Render(context.Background(), configPath, "toml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	require.NoError(t, f.app.List(context.Background(), configPath))

	out := f.out.String()
	assert.Contains(t, out, "Foo:win (D3)")
	assert.Contains(t, out, "Bar:mac (D4)")
	assert.Contains(t, out, "foo-win")
	assert.Contains(t, out, "fewframesonly,fast")
}

func TestApp_Command(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	require.NoError(t, f.app.Command(context.Background(), configPath, "Foo:win (D3)", "B.MMM"))
	assert.Equal(t,
		"../scummvm -c scummvm.conf --start-movie=B.MMM --debugflags=fewframesonly,fast foo\n",
		f.out.String())
}

func TestApp_Command_NotFound(t *testing.T) {
	t.Run("builder", func(t *testing.T) {
		f := newFixture(t)
		f.expectLoad()

		err := f.app.Command(context.Background(), configPath, "Nope:win (D3)", "A.MMM")
		assert.ErrorContains(t, err, domain.ErrBuilderNotFound.Error())
	})

	t.Run("movie", func(t *testing.T) {
		f := newFixture(t)
		f.expectLoad()

		err := f.app.Command(context.Background(), configPath, "Foo:win (D3)", "Z.MMM")
		assert.ErrorContains(t, err, domain.ErrMovieNotFound.Error())
		assert.Empty(t, f.out.String())
	})
}

func TestApp_Validate(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()
	f.verifier.EXPECT().MissingSources("/srv/director", []string{"foo-win", "bar-mac"}).Return([]string{"bar-mac"}, nil)
	f.logger.EXPECT().Warn("source directory missing: bar-mac")
	f.logger.EXPECT().Success("2 targets, 2 builders")

	require.NoError(t, f.app.Validate(context.Background(), configPath))
}

func TestApp_Validate_VerifierError(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()
	f.verifier.EXPECT().MissingSources(gomock.Any(), gomock.Any()).Return(nil, domain.ErrWalkFailed)

	err := f.app.Validate(context.Background(), configPath)
	assert.ErrorIs(t, err, domain.ErrWalkFailed)
}

func TestApp_Sync(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	source := filepath.Join("/srv/director", "bar-mac") + string(filepath.Separator)
	f.hasher.EXPECT().ComputeTreeHash(source).Return("hash", nil)
	f.store.EXPECT().Get(f.settings.Root, "Bar:mac (D4)").Return(nil, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), f.settings.Root).DoAndReturn(
		func(_ context.Context, step *domain.Step, _ string) error {
			assert.Equal(t, []string{"rsync", "-av", "--delete", source, "bar-mac"}, step.Command)
			return nil
		})
	f.hasher.EXPECT().ComputeTreeHash(filepath.Join(f.settings.Root, "build", "bar-mac")).Return("desthash", nil)
	f.store.EXPECT().Put(f.settings.Root, gomock.Any()).DoAndReturn(
		func(_ string, record domain.SyncRecord) error {
			assert.Equal(t, "hash", record.SourceHash)
			assert.Equal(t, "desthash", record.DestinationHash)
			return nil
		})
	f.logger.EXPECT().Success("Bar:mac (D4): synced")

	require.NoError(t, f.app.Sync(context.Background(), configPath, []string{"Bar:mac (D4)"}, app.SyncOptions{}))
	assert.Contains(t, f.out.String(), "passed")
}

func TestApp_Sync_AllBuilders(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	f.hasher.EXPECT().ComputeTreeHash(gomock.Any()).Return("hash", nil).Times(4)
	f.store.EXPECT().Get(f.settings.Root, gomock.Any()).Return(&domain.SyncRecord{SourceHash: "hash", DestinationHash: "hash"}, nil).Times(2)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	require.NoError(t, f.app.Sync(context.Background(), configPath, nil, app.SyncOptions{Jobs: 2}))
	assert.Contains(t, f.out.String(), "skipped")
}

func TestApp_Sync_UnknownBuilder(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	err := f.app.Sync(context.Background(), configPath, []string{"Nope:win (D3)"}, app.SyncOptions{})
	assert.ErrorContains(t, err, domain.ErrBuilderNotFound.Error())
}

func TestApp_Exec(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	var ran []string
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), f.settings.Root).DoAndReturn(
		func(_ context.Context, step *domain.Step, _ string) error {
			assert.Equal(t, domain.StepTest, step.Kind)
			assert.Equal(t, filepath.Join("build", "foo-win"), step.WorkDir)
			ran = append(ran, step.Name)
			return nil
		}).Times(2)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	f.logger.EXPECT().Success(gomock.Any()).Times(2)

	require.NoError(t, f.app.Exec(context.Background(), configPath, "Foo:win (D3)", nil))
	assert.Equal(t, []string{"A.MMM", "B.MMM"}, ran)
	assert.Contains(t, f.out.String(), "passed")
}

func TestApp_Exec_SelectedMovies(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), f.settings.Root).DoAndReturn(
		func(_ context.Context, step *domain.Step, _ string) error {
			assert.Equal(t, "B.MMM", step.Name)
			return nil
		})
	f.logger.EXPECT().Info("running B.MMM")
	f.logger.EXPECT().Success(gomock.Any())

	require.NoError(t, f.app.Exec(context.Background(), configPath, "Foo:win (D3)", []string{"B.MMM"}))
}

func TestApp_Exec_Failure(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	stepErr := errors.Join(domain.ErrStepTimedOut, errors.New("signal: quit"))
	gomock.InOrder(
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(stepErr),
		f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)
	f.logger.EXPECT().Info(gomock.Any()).Times(2)
	f.logger.EXPECT().Error(stepErr)
	f.logger.EXPECT().Success(gomock.Any())

	err := f.app.Exec(context.Background(), configPath, "Foo:win (D3)", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTestStepsFailed.Error())
	assert.Contains(t, f.out.String(), "timed_out")
}

func TestApp_Exec_UnknownMovie(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	err := f.app.Exec(context.Background(), configPath, "Foo:win (D3)", []string{"A.MMM", "Z.MMM"})
	assert.ErrorContains(t, err, domain.ErrMovieNotFound.Error())
}

func TestApp_Exec_UnknownBuilder(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	err := f.app.Exec(context.Background(), configPath, "Nope:win (D3)", nil)
	assert.ErrorContains(t, err, domain.ErrBuilderNotFound.Error())
}

func TestApp_Exec_Canceled(t *testing.T) {
	f := newFixture(t)
	f.expectLoad()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app.Exec(ctx, configPath, "Foo:win (D3)", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents_SetJSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := &app.Components{Logger: mocks.NewMockLogger(ctrl)}

	assert.NotPanics(t, func() { c.SetJSONLogs(true) })
}
