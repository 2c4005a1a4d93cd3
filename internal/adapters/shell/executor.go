// Package shell runs steps as local processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/reel/internal/core/domain"
	"go.trai.ch/reel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// DefaultGracePeriod is how long an interrupted process may take to exit before it is killed.
const DefaultGracePeriod = 5 * time.Second

var signals = map[string]syscall.Signal{
	"HUP":  syscall.SIGHUP,
	"INT":  syscall.SIGINT,
	"QUIT": syscall.SIGQUIT,
	"KILL": syscall.SIGKILL,
	"TERM": syscall.SIGTERM,
	"USR1": syscall.SIGUSR1,
	"USR2": syscall.SIGUSR2,
}

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger      ports.Logger
	gracePeriod time.Duration
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger:      logger,
		gracePeriod: DefaultGracePeriod,
	}
}

// WithGracePeriod returns a copy of the executor using d as the kill grace period.
func (e *Executor) WithGracePeriod(d time.Duration) *Executor {
	return &Executor{logger: e.logger, gracePeriod: d}
}

// Execute runs the step's command in root/step.WorkDir and waits for it.
//
// The step's interrupt signal is sent when the step produced no output for Timeout
// or ran longer than MaxTime. A process still alive after the grace period is killed.
func (e *Executor) Execute(ctx context.Context, step *domain.Step, root string) error {
	if len(step.Command) == 0 {
		return nil
	}

	sig, err := resolveSignal(step.InterruptSignal)
	if err != nil {
		return zerr.With(err, "step", step.Name)
	}

	dir := filepath.Join(root, step.WorkDir)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create working directory"), "path", dir)
	}

	cmdEnv := resolveEnvironment(os.Environ(), step.Env)
	if step.LogEnviron {
		e.logger.Info("environment:\n  " + strings.Join(cmdEnv, "\n  "))
	}

	runCtx := ctx
	if step.MaxTime > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeoutCause(ctx, step.MaxTime, domain.ErrStepMaxTimeExceeded)
		defer cancel()
	}

	runCtx, cancelIdle := context.WithCancelCause(runCtx)
	defer cancelIdle(nil)

	activity := &activityWriter{}
	if step.Timeout > 0 {
		activity.timer = time.AfterFunc(step.Timeout, func() { cancelIdle(domain.ErrStepTimedOut) })
		activity.timeout = step.Timeout
		defer activity.stop()
	}

	name := step.Command[0]
	executable := name
	if !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(runCtx, executable, step.Command[1:]...) //nolint:gosec // step commands come from trusted settings and targets
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = cmdEnv
	cmd.Cancel = func() error { return cmd.Process.Signal(sig) }
	cmd.WaitDelay = e.gracePeriod

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	cmd.Stdout = io.MultiWriter(activity, stdoutLog)
	cmd.Stderr = io.MultiWriter(activity, stderrLog)

	err = cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err == nil {
		return nil
	}

	return e.classify(runCtx, step, err)
}

func (e *Executor) classify(runCtx context.Context, step *domain.Step, err error) error {
	switch cause := context.Cause(runCtx); {
	case errors.Is(cause, domain.ErrStepTimedOut):
		return zerr.With(zerr.With(errors.Join(domain.ErrStepTimedOut, err), "step", step.Name), "timeout", step.Timeout.String())
	case errors.Is(cause, domain.ErrStepMaxTimeExceeded):
		return zerr.With(zerr.With(errors.Join(domain.ErrStepMaxTimeExceeded, err), "step", step.Name), "max_time", step.MaxTime.String())
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.With(errors.Join(domain.ErrStepFailed, err), "step", step.Name), "exit_code", exitCode)
}

func resolveSignal(name string) (syscall.Signal, error) {
	if name == "" {
		name = domain.DefaultInterruptSignal
	}
	sig, ok := signals[strings.TrimPrefix(strings.ToUpper(name), "SIG")]
	if !ok {
		return 0, zerr.With(domain.ErrUnknownSignal, "signal", name)
	}
	return sig, nil
}

// activityWriter pushes the inactivity deadline back on every write.
type activityWriter struct {
	mu      sync.Mutex
	timer   *time.Timer
	timeout time.Duration
	stopped bool
}

func (w *activityWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && !w.stopped && len(p) > 0 {
		w.timer.Reset(w.timeout)
	}
	return len(p), nil
}

func (w *activityWriter) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	w.timer.Stop()
}

// logWriter forwards complete output lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// resolveEnvironment overlays the step environment on the inherited one.
// The result is sorted by key so runs are reproducible.
func resolveEnvironment(sysEnv, stepEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(stepEnv))
	for _, entries := range [][]string{sysEnv, stepEnv} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
				envMap[k] = v
			}
		}
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
