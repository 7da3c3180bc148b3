// Package runlog provides a slog handler that appends plain
// "[2006-01-02 15:04:05] message key=value" lines to a log file, and
// optionally mirrors them to a console writer. The file is opened in
// append mode for every record and closed again, so the log survives
// however the process ends and concurrent invocations never hold a lock.
package runlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

type Handler struct {
	path    string
	console io.Writer
	level   slog.Leveler
	attrs   string
	group   string
}

// New creates a handler appending to the file at path. A non-nil console
// writer receives a copy of every line.
func New(path string, console io.Writer) *Handler {
	return &Handler{
		path:    path,
		console: console,
		level:   slog.LevelInfo,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteString("] ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteString("\n")

	line := b.String()

	if h.console != nil {
		if _, err := io.WriteString(h.console, line); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append run log: %w", err)
	}

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s%s=%v", group, a.Key, a.Value.Any())
}
