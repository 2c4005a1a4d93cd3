package domain

import "time"

const (
	// DefaultEmulatorBinary is the emulator path relative to a test step's working directory.
	DefaultEmulatorBinary = "../scummvm"
	// DefaultEmulatorConfig is the emulator configuration file passed with -c.
	DefaultEmulatorConfig = "scummvm.conf"
	// DefaultTestTimeout is how long a test step may run without producing output.
	DefaultTestTimeout = 20 * time.Second
	// DefaultTestMaxTime is the hard cap on a test step's run time.
	DefaultTestMaxTime = 30 * time.Second
	// DefaultInterruptSignal is sent to a test step when one of its timeouts fires.
	DefaultInterruptSignal = "QUIT"
	// DefaultDownloadStepName names the placeholder download step.
	DefaultDownloadStepName = "download"
)

// DownloadSettings describes the opaque step that fetches the emulator build.
type DownloadSettings struct {
	Name        string
	Description string
	Command     []string
	WorkDir     string
}

// Settings holds the resolved runtime configuration.
type Settings struct {
	// BaseDir is the directory holding targets.json and the game data store.
	BaseDir string
	// Root is the local directory builders run in when executed by reel itself.
	Root string
	// Workers are the worker names every builder is bound to.
	Workers []string

	EmulatorBinary string
	EmulatorConfig string
	// Env is the default environment of every test step, in "KEY=VALUE" format.
	Env []string

	TestTimeout     time.Duration
	TestMaxTime     time.Duration
	InterruptSignal string

	Download DownloadSettings
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{
		Root:            ".",
		EmulatorBinary:  DefaultEmulatorBinary,
		EmulatorConfig:  DefaultEmulatorConfig,
		TestTimeout:     DefaultTestTimeout,
		TestMaxTime:     DefaultTestMaxTime,
		InterruptSignal: DefaultInterruptSignal,
		Download: DownloadSettings{
			Name: DefaultDownloadStepName,
		},
	}
}

// InterruptSignals lists the signal names a step may use as its interrupt signal.
var InterruptSignals = []string{"HUP", "INT", "QUIT", "KILL", "TERM", "USR1", "USR2"}
