// Package log provides structured logging for data loading, filtering, and
// exploration workflows.
//
// The package wraps Go's log/slog behind a small Logger interface so that
// library code never talks to a concrete backend. SetupLogger installs a
// JSON handler on stderr (stdout stays free for frame output), decorated so
// that cockroachdb/errors values logged with ErrAttr carry their origin
// stacktrace. The attribute keys in attributes.go give every package the
// same vocabulary for datasets, frame shapes, filter passes, and timings.
//
// A typical pass logs like this:
//
//	logger := log.GetLoggerWithName("filter")
//	logger.Info("filter pass completed",
//	    log.RowsInKey, 10000,
//	    log.RowsOutKey, 4521,
//	    log.RetainedPctKey, 45.2,
//	)
package log

import (
	"context"
)

// Logger is the structured logging interface used throughout the module.
//
// Methods take a message plus alternating key/value pairs, the log/slog
// convention, so call sites read the same whether the backend is the slog
// default logger or the in-memory test logger. Loggers are cheap to copy
// and safe for concurrent use.
type Logger interface {
	// Debug records fine-grained diagnostics, such as per-step row counts
	// inside a filter pass. Debug output is off unless the CLI runs with
	// --log-level debug.
	//
	//	logger.Debug("filter applied",
	//	    log.FilterKey, "numeric",
	//	    log.RowsOutKey, 812,
	//	)
	Debug(msg string, fields ...any)

	// Info records the normal milestones of a run: a dataset loaded, a
	// filter pass finished, a chart written.
	//
	//	logger.Info("dataset loaded",
	//	    log.DatasetKey, "sales_2024.csv",
	//	    log.RowsKey, 10000,
	//	)
	Info(msg string, fields ...any)

	// Warn records conditions the run survives, most importantly filters
	// skipped by the fail-open policy.
	//
	//	logger.Warn("filter skipped",
	//	    log.FilterKey, "date",
	//	    log.FilterColumnKey, "signup",
	//	)
	Warn(msg string, fields ...any)

	// Error records failures that abort an operation. Pass the error with
	// ErrAttr so the handler can attach its stacktrace:
	//
	//	logger.Error("export failed",
	//	    log.ErrAttr(err),
	//	    log.DatasetKey, out,
	//	)
	Error(msg string, fields ...any)

	// With returns a Logger that adds the given fields to every record it
	// writes. Components bind their identity once and the context follows
	// each message:
	//
	//	logger := log.GetLogger().With(log.SessionIDKey, store.ID())
	With(fields ...any) Logger

	// Enabled reports whether a record at level would be written. Guard
	// expensive field construction with it:
	//
	//	if logger.Enabled(ctx, log.LevelDebug) {
	//	    logger.Debug("frame head", "rows", f.Head(5).String())
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level is a log severity. The values match slog.Level, so converting
// between the two is a plain cast.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the conventional upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
