package mandel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything and reports itself disabled,
// so callers skip formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by mandel and its sub-packages.
// The default logger is silent; pass nil to restore it.
//
// Levels:
//   - [slog.LevelDebug]: per-frame statistics, rejected viewport operations
//   - [slog.LevelInfo]: lifecycle (window opened, buffer resized)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
