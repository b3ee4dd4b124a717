package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestTestLoggerCapture(t *testing.T) {
	logger := NewTestLogger(LevelDebug)

	logger.Debug("scanning column", ColumnKey, "age", RowsKey, 100)
	logger.Info("dataset loaded", DatasetKey, "sales.csv")
	logger.Warn("filter skipped", FilterKey, "date")
	logger.Error("export failed", ErrAttr(fmt.Errorf("disk full")))

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}

	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i, want := range levels {
		if entries[i].Level != want {
			t.Errorf("entry %d level = %s, want %s", i, entries[i].Level, want)
		}
	}

	if !logger.ContainsMessage("dataset loaded") {
		t.Error("info message not captured")
	}
	if !logger.ContainsField(ColumnKey, "age") {
		t.Error("column field not captured")
	}
	if !logger.ContainsField(RowsKey, 100) {
		t.Error("row count field not captured")
	}
	if !logger.ContainsField(ErrAttrKey, "disk full") {
		t.Error("error should be stored as its message")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger := NewTestLogger(LevelDebug)

	bound := logger.With(
		DatasetKey, "sales.csv",
		ComponentKey, ComponentFilter,
	)
	bound.Info("filter pass completed", RowsOutKey, 4521)

	// The child records into the parent's log, with its bound fields.
	entry, ok := logger.LastEntry()
	if !ok {
		t.Fatal("no entry captured through bound logger")
	}
	if entry.Fields[DatasetKey] != "sales.csv" {
		t.Errorf("bound dataset field = %v", entry.Fields[DatasetKey])
	}
	if entry.Fields[ComponentKey] != ComponentFilter {
		t.Errorf("bound component field = %v", entry.Fields[ComponentKey])
	}
	if entry.Fields[RowsOutKey] != 4521 {
		t.Errorf("call-site field = %v", entry.Fields[RowsOutKey])
	}

	// Binding more fields must not leak into the parent.
	if len(logger.bound) != 0 {
		t.Error("With mutated the parent logger")
	}
}

func TestTestLoggerLevelFilter(t *testing.T) {
	logger := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(ctx, LevelWarn) {
		t.Error("warn should be enabled at info level")
	}

	logger.Debug("suppressed")
	logger.Info("kept")

	if logger.ContainsMessage("suppressed") {
		t.Error("debug record captured despite info level")
	}
	if got := len(logger.Entries()); got != 1 {
		t.Errorf("entries = %d, want 1", got)
	}
}

func TestFilterPassAttributes(t *testing.T) {
	logger := NewTestLogger(LevelInfo)

	logger.Info("filter pass completed",
		OperationKey, OperationFilter,
		FilterKey, "numeric",
		FilterColumnKey, "age",
		RowsInKey, 10000,
		RowsOutKey, 4521,
		RetainedPctKey, 45.21,
		DurationMsKey, 18,
	)

	entry, ok := logger.LastEntry()
	if !ok {
		t.Fatal("no entry captured")
	}
	want := map[string]any{
		OperationKey:    OperationFilter,
		FilterKey:       "numeric",
		FilterColumnKey: "age",
		RowsInKey:       10000,
		RowsOutKey:      4521,
		RetainedPctKey:  45.21,
		DurationMsKey:   18,
	}
	for key, v := range want {
		if entry.Fields[key] != v {
			t.Errorf("field %s = %v, want %v", key, entry.Fields[key], v)
		}
	}
}

func TestStackHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WithStacktraces(slog.NewJSONHandler(&buf, nil)))

	logger.Error("filter pass failed", ErrAttr(errors.New("column vanished")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	st, ok := record[StacktraceKey].(string)
	if !ok || st == "" {
		t.Fatalf("record has no %s attribute: %v", StacktraceKey, record)
	}
	if !strings.Contains(st, "TestStackHandlerAddsStacktrace") {
		t.Errorf("stacktrace does not reach the error origin: %q", st)
	}
}

func TestStackHandlerPassthrough(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WithStacktraces(slog.NewJSONHandler(&buf, nil)))

	// Plain records and stdlib errors carry no stored stack; the record
	// must pass through without the attribute.
	logger.Info("dataset loaded", DatasetKey, "sales.csv")
	logger.Error("load failed", ErrAttr(fmt.Errorf("no such file")))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if _, found := record[StacktraceKey]; found {
			t.Errorf("unexpected %s on record: %s", StacktraceKey, line)
		}
	}
}

func TestConcurrentLogging(t *testing.T) {
	logger := NewTestLogger(LevelInfo)

	const goroutines = 4
	const perGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			worker := logger.With("worker", id)
			for j := 0; j < perGoroutine; j++ {
				worker.Info("chunk done", "chunk", j)
			}
		}(g)
	}
	wg.Wait()

	if got := len(logger.Entries()); got != goroutines*perGoroutine {
		t.Errorf("entries = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		if got := ToLogLevel(in); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func BenchmarkTestLoggerInfo(b *testing.B) {
	logger := NewTestLogger(LevelInfo)
	for i := 0; i < b.N; i++ {
		logger.Info("filter applied",
			FilterKey, "numeric",
			RowsInKey, 10000,
			RowsOutKey, 4521,
		)
	}
}

func BenchmarkStackHandler(b *testing.B) {
	logger := slog.New(WithStacktraces(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	err := errors.New("bench error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Error("pass failed", ErrAttr(err))
	}
}
