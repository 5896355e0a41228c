package dyncanvas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record at all, which
// keeps disabled logging out of the frame loop's cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so image loaders
// can log from their own goroutines while the frame loop runs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for dyncanvas and its sub-packages.
// By default, dyncanvas produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically,
// so it may be called while a frame loop or image loads are logging. Records
// already being handled finish on the previous logger. Pass nil to disable
// logging (restore the default silent behavior).
//
// Log levels used by dyncanvas:
//   - [slog.LevelDebug]: shape renders, zoom changes, layer list edits
//   - [slog.LevelInfo]: image loads completed
//   - [slog.LevelWarn]: failed layers, failed image loads
//
// Example:
//
//	// Enable info-level logging to stderr:
//	dyncanvas.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	dyncanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The shape package calls this so that
// one SetLogger call configures the whole module.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
