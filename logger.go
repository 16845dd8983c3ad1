package rawpaint

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/rawpaint/area"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for rawpaint and its sub-packages.
// By default, rawpaint produces no log output. Call SetLogger to enable logging.
//
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by rawpaint:
//   - [slog.LevelDebug]: pointer events, kernel builds, preset reloads
//   - [slog.LevelInfo]: canvas resets, saved images
//   - [slog.LevelWarn]: skipped operations (empty canvas, missing graph)
//
// Example:
//
//	rawpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	area.SetLogger(l)
}

// Logger returns the current logger used by rawpaint.
// Sub-packages (preset, the commands) call this to share the same logger
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
