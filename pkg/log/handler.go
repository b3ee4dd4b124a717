package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrAttrKey is the record key that carries an error value. StackHandler
// watches for it.
const ErrAttrKey = "error"

// ErrAttr wraps an error for structured logging:
//
//	logger.Error("load failed", log.ErrAttr(err), log.DatasetKey, path)
//
// When the error came from cockroachdb/errors, the handler installed by
// SetupLogger adds the stacktrace captured at the error's origin to the
// same record.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// StackHandler decorates records that carry an error attribute with the
// stacktrace cockroachdb/errors stored when the error was created. The
// trace survives any number of Wrap layers, so a log line written at the
// CLI still points at the frame or filter call that failed.
type StackHandler struct {
	next slog.Handler
}

// WithStacktraces wraps next in a StackHandler.
func WithStacktraces(next slog.Handler) slog.Handler {
	return &StackHandler{next: next}
}

func (h *StackHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *StackHandler) Handle(ctx context.Context, r slog.Record) error {
	st := recordStack(r)
	if st == "" {
		return h.next.Handle(ctx, r)
	}
	out := r.Clone()
	out.AddAttrs(slog.String(StacktraceKey, st))
	return h.next.Handle(ctx, out)
}

func (h *StackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackHandler{next: h.next.WithAttrs(attrs)}
}

func (h *StackHandler) WithGroup(name string) slog.Handler {
	return &StackHandler{next: h.next.WithGroup(name)}
}

// recordStack returns the origin stacktrace of the first error attribute on
// the record, or "" when the record has none or the error carries no trace.
func recordStack(r slog.Record) string {
	var stack string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != ErrAttrKey {
			return true
		}
		err, ok := a.Value.Any().(error)
		if !ok {
			return true
		}
		if details := errors.GetSafeDetails(err).SafeDetails; len(details) > 0 {
			stack = details[0]
		}
		return false
	})
	return stack
}
