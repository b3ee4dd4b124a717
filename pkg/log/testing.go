package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Entry is one captured log record.
type Entry struct {
	Level   Level
	Message string
	Fields  map[string]any
}

// TestLogger implements Logger by recording entries in memory, typed and in
// order, so tests can assert on messages and fields without parsing JSON.
// Error values are stored as their Error() string, matching what the JSON
// backend would emit. Safe for concurrent use; With returns a child that
// records into the same log.
type TestLogger struct {
	sink  *testSink
	level Level
	bound map[string]any
}

type testSink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger returns a TestLogger that captures records at or above
// level.
func NewTestLogger(level Level) *TestLogger {
	return &TestLogger{sink: &testSink{}, level: level}
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) { t.record(LevelDebug, msg, fields) }

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) { t.record(LevelInfo, msg, fields) }

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) { t.record(LevelWarn, msg, fields) }

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) { t.record(LevelError, msg, fields) }

// With implements Logger.With. The child shares this logger's captured log.
func (t *TestLogger) With(fields ...any) Logger {
	bound := make(map[string]any, len(t.bound)+len(fields)/2)
	for k, v := range t.bound {
		bound[k] = v
	}
	addPairs(bound, fields)
	return &TestLogger{sink: t.sink, level: t.level, bound: bound}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return level >= t.level
}

func (t *TestLogger) record(level Level, msg string, fields []any) {
	if level < t.level {
		return
	}
	entryFields := make(map[string]any, len(t.bound)+len(fields)/2)
	for k, v := range t.bound {
		entryFields[k] = v
	}
	addPairs(entryFields, fields)

	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()
	t.sink.entries = append(t.sink.entries, Entry{Level: level, Message: msg, Fields: entryFields})
}

// addPairs folds alternating key/value arguments into dst, the way slog
// consumes them: a slog.Attr stands alone, everything else pairs up. A value
// that is an error is stored as its message. A bare error with no key lands
// under the standard error key, the way ErrAttr would place it.
func addPairs(dst map[string]any, fields []any) {
	for i := 0; i < len(fields); i++ {
		if a, ok := fields[i].(slog.Attr); ok {
			dst[a.Key] = fieldValue(a.Value.Resolve().Any())
			continue
		}
		if err, ok := fields[i].(error); ok {
			dst[ErrAttrKey] = err.Error()
			continue
		}
		if i+1 >= len(fields) {
			return
		}
		dst[fmt.Sprintf("%v", fields[i])] = fieldValue(fields[i+1])
		i++
	}
}

func fieldValue(v any) any {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return v
}

// Entries returns a copy of the captured records in write order.
func (t *TestLogger) Entries() []Entry {
	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()
	out := make([]Entry, len(t.sink.entries))
	copy(out, t.sink.entries)
	return out
}

// Messages returns the captured messages in write order.
func (t *TestLogger) Messages() []string {
	entries := t.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// ContainsMessage reports whether any captured message contains substr.
func (t *TestLogger) ContainsMessage(substr string) bool {
	for _, m := range t.Messages() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// ContainsField reports whether any captured record has the field key with
// the given value. Values compare by their fmt rendering, so an int logged
// as 42 matches ContainsField(key, 42).
func (t *TestLogger) ContainsField(key string, value any) bool {
	want := fmt.Sprintf("%v", value)
	for _, e := range t.Entries() {
		if got, ok := e.Fields[key]; ok && fmt.Sprintf("%v", got) == want {
			return true
		}
	}
	return false
}

// LastEntry returns the most recent record, or false when nothing has been
// captured yet.
func (t *TestLogger) LastEntry() (Entry, bool) {
	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()
	if len(t.sink.entries) == 0 {
		return Entry{}, false
	}
	return t.sink.entries[len(t.sink.entries)-1], true
}

// Reset discards the captured records, for reuse across test cases.
func (t *TestLogger) Reset() {
	t.sink.mu.Lock()
	defer t.sink.mu.Unlock()
	t.sink.entries = nil
}
