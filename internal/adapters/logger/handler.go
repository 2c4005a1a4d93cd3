// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reel/internal/ui/output"
	"go.trai.ch/reel/internal/ui/style"
)

// LevelSuccess sits between Info and Warn so JSON consumers still treat it as informational.
const LevelSuccess = slog.LevelInfo + 2

// PrettyHandler is a slog.Handler that writes one colored line per record.
type PrettyHandler struct {
	term     *termenv.Output
	minLevel slog.Leveler
	bound    []slog.Attr
	group    string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{term: output.New(w), minLevel: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.minLevel = opts.Level
	}
	return h
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level()
}

// levelStyle picks the glyph prefix and foreground color for a record level.
func levelStyle(level slog.Level) (glyph string, color lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level == LevelSuccess:
		return style.Check, style.Green
	default:
		return "", style.Slate
	}
}

// Handle writes r as a single line: glyph, message, then key=value attributes.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color := levelStyle(r.Level)

	var line strings.Builder
	if glyph != "" {
		line.WriteString(glyph + " ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.bound {
		line.WriteString(" " + formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" " + formatAttr(h.group, attr))
		return true
	})

	styled := h.term.String(line.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.term.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a copy of h with attrs bound to every later record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.bound = append(h.bound[:len(h.bound):len(h.bound)], attrs...)
	return &next
}

// WithGroup returns a copy of h that prefixes attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.group = name
	return &next
}

func formatAttr(group string, attr slog.Attr) string {
	if group == "" {
		return attr.Key + "=" + attr.Value.String()
	}
	return group + "." + attr.Key + "=" + attr.Value.String()
}
