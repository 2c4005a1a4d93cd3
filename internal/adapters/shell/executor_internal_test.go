package shell

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reel/internal/core/domain"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		stepEnv  []string
		expected []string
	}{
		{
			name:     "System only, sorted",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "Step overrides system",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			stepEnv:  []string{"USER=reel", "SDL_VIDEODRIVER=dummy"},
			expected: []string{"PATH=/bin", "SDL_VIDEODRIVER=dummy", "USER=reel"},
		},
		{
			name:     "Malformed entries are dropped",
			sysEnv:   []string{"NOEQUALS", "=nokey", "A=1"},
			stepEnv:  []string{"B=x=y"},
			expected: []string{"A=1", "B=x=y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.stepEnv))
		})
	}
}

func TestResolveSignal(t *testing.T) {
	sig, err := resolveSignal("")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGQUIT, sig, "empty signal must default to QUIT")

	sig, err = resolveSignal("sigterm")
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGTERM, sig)

	_, err = resolveSignal("BOGUS")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownSignal.Error())
}

func TestSignalsCoverInterruptSignals(t *testing.T) {
	for _, name := range domain.InterruptSignals {
		_, ok := signals[name]
		assert.True(t, ok, "signal %s accepted by settings has no mapping", name)
	}
}

func TestLogWriter(t *testing.T) {
	var lines []string
	w := &logWriter{logger: recordLogger{lines: &lines}, level: "info"}

	_, _ = w.Write([]byte("part1"))
	_, _ = w.Write([]byte("part2\nsecond\r\nthi"))
	_, _ = w.Write([]byte("rd"))
	require.NoError(t, w.Close())

	assert.Equal(t, []string{"part1part2", "second", "third"}, lines)
}

type recordLogger struct {
	lines *[]string
}

func (r recordLogger) Info(msg string)    { *r.lines = append(*r.lines, msg) }
func (r recordLogger) Success(msg string) { *r.lines = append(*r.lines, msg) }
func (r recordLogger) Warn(msg string)    { *r.lines = append(*r.lines, msg) }
func (r recordLogger) Error(err error)    { *r.lines = append(*r.lines, err.Error()) }
