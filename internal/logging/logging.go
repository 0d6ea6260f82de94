// Package logging wires structured logging for polyium commands: slog as the
// front end, charmbracelet/log rendering to the terminal, and clog carrying
// the logger through contexts.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/chainguard-dev/clog"
	charmlog "github.com/charmbracelet/log"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// New returns a Handler writing to w at the given level.
func New(w io.Writer, level slog.Level) *Handler {
	return NewHandler(charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           charmlog.Level(level),
	}))
}

// Setup installs a Handler on w as the slog default and returns ctx
// carrying a clog logger backed by the same handler.
func Setup(ctx context.Context, w io.Writer, level slog.Level) context.Context {
	h := New(w, level)
	slog.SetDefault(slog.New(h))
	return clog.WithLogger(ctx, clog.New(h))
}

// WithName returns ctx carrying a logger whose messages are prefixed with
// "[name] ".
func WithName(ctx context.Context, name string) context.Context {
	h := NewHandler(clog.FromContext(ctx).Handler()).Named(name)
	return clog.WithLogger(ctx, clog.New(h))
}
