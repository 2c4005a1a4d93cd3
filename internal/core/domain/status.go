package domain

import (
	"errors"
	"strings"
	"time"
)

// StepStatus represents the outcome of a step executed locally.
type StepStatus string

const (
	// StepStatusPassed indicates the step command exited successfully.
	StepStatusPassed StepStatus = "passed"
	// StepStatusFailed indicates the step command exited unsuccessfully.
	StepStatusFailed StepStatus = "failed"
	// StepStatusTimedOut indicates the step was interrupted by one of its timeouts.
	StepStatusTimedOut StepStatus = "timed_out"
	// StepStatusSkipped indicates the step did not need to run, e.g. an unchanged sync source.
	StepStatusSkipped StepStatus = "skipped"
)

// IsFailure reports whether the status counts as a failed step.
func (s StepStatus) IsFailure() bool {
	return s == StepStatusFailed || s == StepStatusTimedOut
}

// NormalizeStepStatus converts a string to a StepStatus, defaulting to failed if unknown.
func NormalizeStepStatus(s string) StepStatus {
	switch strings.ToLower(s) {
	case string(StepStatusPassed):
		return StepStatusPassed
	case string(StepStatusTimedOut):
		return StepStatusTimedOut
	case string(StepStatusSkipped):
		return StepStatusSkipped
	default:
		return StepStatusFailed
	}
}

// StatusFromError maps the error returned by a step execution to its status.
func StatusFromError(err error) StepStatus {
	switch {
	case err == nil:
		return StepStatusPassed
	case errors.Is(err, ErrStepTimedOut), errors.Is(err, ErrStepMaxTimeExceeded):
		return StepStatusTimedOut
	default:
		return StepStatusFailed
	}
}

// StepResult records the outcome of one locally executed step.
type StepResult struct {
	Builder  string
	Step     string
	Status   StepStatus
	Duration time.Duration
	Err      error
}
