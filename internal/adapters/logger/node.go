package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/reel/internal/core/ports"
)

const (
	// NodeID identifies the shared logger in the graft graph.
	NodeID graft.ID = "adapter.reel.logger"

	// FormatEnvVar selects JSON logging before any flag is parsed when set to "json".
	FormatEnvVar = "REEL_LOG_FORMAT"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run:       provide,
	})
}

func provide(_ context.Context) (ports.Logger, error) {
	return FromEnvironment(os.Getenv), nil
}

// FromEnvironment creates a Logger whose format follows FormatEnvVar as read by getenv.
func FromEnvironment(getenv func(string) string) *Logger {
	lg := New()
	if getenv(FormatEnvVar) == "json" {
		lg.SetJSON(true)
	}
	return lg
}
