// Package logging builds the slog loggers used by the cavern subsystems.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gookit/color"
)

var levelStyles = map[slog.Level]color.Style{
	slog.LevelDebug: {color.FgGray},
	slog.LevelInfo:  {color.FgGreen},
	slog.LevelWarn:  {color.FgYellow, color.OpBold},
	slog.LevelError: {color.FgRed, color.OpBold},
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing single-line records to w
func New(w io.Writer, level slog.Level, useColor bool) *slog.Logger {
	return slog.New(NewConsoleHandler(w, level, useColor))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(NewConsoleHandler(io.Discard, slog.LevelError+1, false))
}

// ConsoleHandler writes "LEVEL message key=value ..." lines, optionally colored
type ConsoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	groups []string
}

// NewConsoleHandler creates a handler writing to w
func NewConsoleHandler(w io.Writer, level slog.Leveler, useColor bool) *ConsoleHandler {
	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		color: useColor,
	}
}

// Enabled implements slog.Handler
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format("15:04:05.000"))
		b.WriteByte(' ')
	}

	lvl := fmt.Sprintf("%-5s", r.Level.String())
	if h.color {
		if style, ok := levelStyles[r.Level]; ok {
			lvl = style.Sprintf("%s", lvl)
		}
	}
	b.WriteString(lvl)
	b.WriteByte(' ')
	b.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&b, prefix, a, h.color)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a, h.color)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr, useColor bool) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga, useColor)
		}
		return
	}
	if useColor {
		key = color.Style{color.FgCyan}.Sprintf("%s", key)
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = fmt.Sprintf("%q", val)
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(val)
}

// WithAttrs implements slog.Handler
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup implements slog.Handler
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
