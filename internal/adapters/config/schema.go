package config

import "time"

// settingsFile is the structure of reel.yaml.
type settingsFile struct {
	TargetsBaseDir string          `mapstructure:"targets_basedir"`
	Root           string          `mapstructure:"root"`
	Workers        []string        `mapstructure:"workers"`
	Emulator       emulatorSection `mapstructure:"emulator"`
	Env            []string        `mapstructure:"env"`
	Test           testSection     `mapstructure:"test"`
	Download       downloadSection `mapstructure:"download"`
}

type emulatorSection struct {
	Binary string `mapstructure:"binary"`
	Config string `mapstructure:"config"`
}

type testSection struct {
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxTime         time.Duration `mapstructure:"max_time"`
	InterruptSignal string        `mapstructure:"interrupt_signal"`
}

type downloadSection struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Command     []string `mapstructure:"command"`
	WorkDir     string   `mapstructure:"workdir"`
}
