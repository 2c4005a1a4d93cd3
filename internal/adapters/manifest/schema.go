package manifest

import (
	"strings"
	"time"

	"go.trai.ch/reel/internal/core/domain"
)

type document struct {
	Builders []builderEntry `yaml:"builders" json:"builders"`
}

type builderEntry struct {
	Name        string      `yaml:"name" json:"name"`
	WorkerNames []string    `yaml:"workernames" json:"workernames"`
	Fingerprint string      `yaml:"fingerprint" json:"fingerprint"`
	Steps       []stepEntry `yaml:"steps" json:"steps"`
}

// stepEntry durations are whole seconds, the unit the host expects.
type stepEntry struct {
	Kind            string            `yaml:"kind" json:"kind"`
	Name            string            `yaml:"name" json:"name"`
	Description     string            `yaml:"description,omitempty" json:"description,omitempty"`
	DescriptionDone string            `yaml:"descriptionDone,omitempty" json:"descriptionDone,omitempty"`
	Command         []string          `yaml:"command,omitempty" json:"command,omitempty"`
	Env             map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	WorkDir         string            `yaml:"workdir,omitempty" json:"workdir,omitempty"`
	Timeout         int64             `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	MaxTime         int64             `yaml:"maxTime,omitempty" json:"maxTime,omitempty"`
	InterruptSignal string            `yaml:"interruptSignal,omitempty" json:"interruptSignal,omitempty"`
	LogEnviron      bool              `yaml:"logEnviron" json:"logEnviron"`
}

func newStepEntry(s *domain.Step) stepEntry {
	return stepEntry{
		Kind:            string(s.Kind),
		Name:            s.Name,
		Description:     s.Description,
		DescriptionDone: s.DescriptionDone,
		Command:         s.Command,
		Env:             envMap(s.Env),
		WorkDir:         s.WorkDir,
		Timeout:         seconds(s.Timeout),
		MaxTime:         seconds(s.MaxTime),
		InterruptSignal: s.InterruptSignal,
		LogEnviron:      s.LogEnviron,
	}
}

// seconds rounds d up to whole seconds so a sub-second limit never renders as unset.
func seconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}

// envMap turns "KEY=VALUE" entries into a map; later entries win.
func envMap(env []string) map[string]string {
	if len(env) == 0 {
		return nil
	}
	m := make(map[string]string, len(env))
	for _, kv := range env {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}
