package ports

import (
	"context"

	"go.trai.ch/reel/internal/core/domain"
)

// Executor defines the interface for running steps locally.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's command in root joined with the step's working directory.
	//
	// Implementations enforce the step's Timeout, MaxTime and InterruptSignal.
	// It returns an error if the command fails or is interrupted.
	Execute(ctx context.Context, step *domain.Step, root string) error
}
