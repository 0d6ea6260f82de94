package logging

import (
	"context"
	"log/slog"
)

// Handler decorates another slog.Handler. It normalizes quoting in every
// message and, when named, prefixes it with "[name] ".
type Handler struct {
	next slog.Handler
	name string
}

// NewHandler wraps next.
func NewHandler(next slog.Handler) *Handler {
	if h, ok := next.(*Handler); ok {
		return h
	}
	return &Handler{next: next}
}

// Named returns a copy of h that prefixes messages with name.
func (h *Handler) Named(name string) *Handler {
	return &Handler{next: h.next, name: name}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = h.format(r.Message)
	return h.next.Handle(ctx, r)
}

func (h *Handler) format(msg string) string {
	msg = NormalizeQuotes(msg)
	if h.name == "" {
		return msg
	}
	return "[" + h.name + "] " + msg
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs), name: h.name}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name), name: h.name}
}
