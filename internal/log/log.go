// Package log provides slog based logging with attributes carried inside
// a context.Context. Output always goes to stderr, never to the stream the
// tally report is written to.
package log

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

// ContextAttrs returns a new context with attrs appended to attributes already
// stored there, if any. A slog.Handler wrapped via NewContextHandler adds them
// to every record logged with this context.
func ContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	stored, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(stored)+len(attrs))
	merged = append(merged, stored...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// ContextHandler decorates every record with attributes stored in a context
// via ContextAttrs.
type ContextHandler struct {
	slog.Handler
}

func NewContextHandler(h slog.Handler) ContextHandler {
	return ContextHandler{Handler: h}
}

func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// New creates a JSON logger writing to stderr. Verbose enables the debug level
// and source code positions.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	base := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     level,
	})
	return slog.New(NewContextHandler(base))
}
