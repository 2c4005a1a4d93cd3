// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	// Success reports a completed unit of work, such as a passing test step.
	Success(msg string)
	Warn(msg string)
	Error(err error)
}
