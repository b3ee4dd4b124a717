package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs the process-wide slog logger: JSON records on stderr
// at the given level, stacktrace decoration for ErrAttr errors, and source
// locations under CloudLogging key names. Tables and frame previews go to
// stdout, so logs and data never interleave.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource:   true,
		Level:       ToLogLevel(loglevel),
		ReplaceAttr: cloudLoggingAttr,
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	slog.SetDefault(slog.New(WithStacktraces(handler)))
}

// cloudLoggingAttr renames slog's built-in record keys to the names the
// CloudLogging agent expects, so severity routing works without a parser.
func cloudLoggingAttr(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	}
	return attr
}

// logLevels are the accepted log_level configuration values.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ToLogLevel maps a configuration string to its slog level. Unknown values
// panic; the CLI validates the flag before this runs.
func ToLogLevel(level string) slog.Level {
	l, ok := logLevels[level]
	if !ok {
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
	return l
}

// slogLogger adapts the process-wide slog default logger to the Logger interface.
type slogLogger struct {
	inner *slog.Logger
}

// GetLogger returns a Logger backed by the slog default logger.
func GetLogger() Logger {
	return &slogLogger{inner: slog.Default()}
}

// GetLoggerWithName returns a Logger pre-populated with a component name.
func GetLoggerWithName(name string) Logger {
	return &slogLogger{inner: slog.Default().With(ComponentKey, name)}
}

// Debug implements Logger.Debug.
func (l *slogLogger) Debug(msg string, fields ...any) {
	l.inner.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (l *slogLogger) Info(msg string, fields ...any) {
	l.inner.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (l *slogLogger) Warn(msg string, fields ...any) {
	l.inner.Warn(msg, fields...)
}

// Error implements Logger.Error.
func (l *slogLogger) Error(msg string, fields ...any) {
	l.inner.Error(msg, fields...)
}

// With implements Logger.With.
func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{inner: l.inner.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.inner.Enabled(ctx, slog.Level(level))
}
