// Package fanout duplicates slog records across several handlers, so a
// run can log to the console and the run-log file at the same time.
package fanout

import (
	"context"
	"errors"
	"log/slog"
)

type Handler struct {
	handlers []slog.Handler
}

func New(handlers ...slog.Handler) *Handler {
	return &Handler{handlers: handlers}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, hh := range h.handlers {
		if hh.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, hh := range h.handlers {
		if !hh.Enabled(ctx, r.Level) {
			continue
		}
		if err := hh.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithAttrs(attrs)
	}
	return &Handler{handlers: next}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, hh := range h.handlers {
		next[i] = hh.WithGroup(name)
	}
	return &Handler{handlers: next}
}
