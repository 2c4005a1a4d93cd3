package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsLoader = (*SettingsLoader)(nil)

// EnvPrefix is the prefix of environment variables overriding settings, e.g. REEL_WORKERS.
const EnvPrefix = "REEL"

// SettingsLoader implements ports.SettingsLoader on top of viper.
type SettingsLoader struct {
	Logger ports.Logger
}

// NewSettingsLoader creates a new SettingsLoader with the given logger.
func NewSettingsLoader(logger ports.Logger) *SettingsLoader {
	return &SettingsLoader{Logger: logger}
}

// Load resolves settings from defaults, the YAML file at path and the environment, in increasing precedence.
func (l *SettingsLoader) Load(path string) (*domain.Settings, error) {
	v := viper.New()

	defaults := domain.DefaultSettings()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("workers", []string{})
	v.SetDefault("emulator.binary", defaults.EmulatorBinary)
	v.SetDefault("emulator.config", defaults.EmulatorConfig)
	v.SetDefault("env", []string{})
	v.SetDefault("test.timeout", defaults.TestTimeout)
	v.SetDefault("test.max_time", defaults.TestMaxTime)
	v.SetDefault("test.interrupt_signal", defaults.InterruptSignal)
	v.SetDefault("download.name", defaults.Download.Name)
	v.SetDefault("download.description", "")
	v.SetDefault("download.command", []string{})
	v.SetDefault("download.workdir", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The base directory keeps its historical unprefixed name.
	if err := v.BindEnv("targets_basedir", domain.BaseDirEnvVar, EnvPrefix+"_TARGETS_BASEDIR"); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}

	if path != "" {
		if err := readSettingsFile(v, path); err != nil {
			return nil, err
		}
	}

	var file settingsFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	settings, err := toSettings(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if len(settings.Workers) == 0 {
		l.Logger.Warn("no workers configured, builders will not be bound to any worker")
	}

	return settings, nil
}

// readSettingsFile merges the file into v. A missing file leaves the defaults in place.
func readSettingsFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}
	return nil
}

func toSettings(file *settingsFile) (*domain.Settings, error) {
	if file.TargetsBaseDir == "" {
		return nil, domain.ErrMissingBaseDir
	}

	// The host takes step timeouts in whole seconds.
	if !wholeSeconds(file.Test.Timeout) {
		return nil, invalidSetting("test.timeout", file.Test.Timeout.String())
	}
	if !wholeSeconds(file.Test.MaxTime) {
		return nil, invalidSetting("test.max_time", file.Test.MaxTime.String())
	}

	signal := strings.TrimPrefix(strings.ToUpper(file.Test.InterruptSignal), "SIG")
	if !slices.Contains(domain.InterruptSignals, signal) {
		return nil, invalidSetting("test.interrupt_signal", file.Test.InterruptSignal)
	}

	for _, kv := range file.Env {
		if key, _, ok := strings.Cut(kv, "="); !ok || key == "" {
			return nil, invalidSetting("env", kv)
		}
	}

	if file.Emulator.Binary == "" {
		return nil, invalidSetting("emulator.binary", file.Emulator.Binary)
	}

	root := file.Root
	if root == "" {
		root = "."
	}

	downloadName := file.Download.Name
	if downloadName == "" {
		downloadName = domain.DefaultDownloadStepName
	}

	return &domain.Settings{
		BaseDir:         file.TargetsBaseDir,
		Root:            root,
		Workers:         slices.Clone(file.Workers),
		EmulatorBinary:  file.Emulator.Binary,
		EmulatorConfig:  file.Emulator.Config,
		Env:             slices.Clone(file.Env),
		TestTimeout:     file.Test.Timeout,
		TestMaxTime:     file.Test.MaxTime,
		InterruptSignal: signal,
		Download: domain.DownloadSettings{
			Name:        downloadName,
			Description: file.Download.Description,
			Command:     slices.Clone(file.Download.Command),
			WorkDir:     file.Download.WorkDir,
		},
	}, nil
}

func wholeSeconds(d time.Duration) bool {
	return d > 0 && d%time.Second == 0
}

func invalidSetting(key, value string) error {
	return zerr.With(zerr.With(domain.ErrInvalidSetting, "key", key), "value", value)
}
