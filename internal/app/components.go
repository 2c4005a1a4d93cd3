package app

import "go.trai.ch/reel/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

type jsonLogger interface {
	SetJSON(enable bool)
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (c *Components) SetJSONLogs(enable bool) {
	if l, ok := c.Logger.(jsonLogger); ok {
		l.SetJSON(enable)
	}
}
