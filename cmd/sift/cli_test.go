package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixture writes the shared sample CSV and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	data := `name,age,score,city,signup,active
Alice,30,85,Tokyo,2024-01-05,true
Bob,25,70,Osaka,2024-02-10,false
Carol,,90,Kyoto,2024-03-15,true
Dave,45,60,Tokyo,2024-04-20,false
Alice,30,85,Tokyo,2024-01-05,true
Eve,35,75,Osaka,2024-05-25,true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// resetCLI restores every bound flag variable to its default. Flag state
// persists across Execute calls within one process, so each invocation
// starts from a reset.
func resetCLI() {
	for _, name := range []string{"config", "log-level", "sheet"} {
		if fl := rootCmd.PersistentFlags().Lookup(name); fl != nil {
			_ = fl.Value.Set("")
			fl.Changed = false
		}
	}
	flagFilterSQL = ""
	flagFilterSearch = ""
	flagFilterCols = nil
	flagFilterDates = nil
	flagFilterNums = nil
	flagFilterCats = nil
	flagFilterBools = nil
	flagFilterOut = ""
	flagFilterPreview = 10
	flagStatsCols = nil
	flagCleanFill = ""
	flagCleanFillCols = nil
	flagCleanFillValue = ""
	flagCleanDropMissing = false
	flagCleanDropDups = false
	flagCleanOutliers = false
	flagCleanOutlierCols = nil
	flagCleanOut = ""
	flagPlotKind = "hist"
	flagPlotX = ""
	flagPlotY = ""
	flagPlotOut = "chart.png"
	flagPlotColorBy = ""
	flagPlotGroupBy = ""
	flagPlotBins = 0
	flagPlotTitle = ""
	flagQuerySQL = ""
	flagQueryOut = ""
	flagQueryPreview = 10
	flagExportOut = ""
}

// trySift executes the root command with args and returns its output and
// error.
func trySift(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetCLI()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// runSift is trySift for commands that must succeed.
func runSift(t *testing.T, args ...string) string {
	t.Helper()
	out, err := trySift(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_Info(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)

	out := runSift(t, "info", path)
	mustContain(t, out,
		"data.csv: 6 rows x 6 columns",
		"2 numeric, 2 categorical, 1 datetime, 1 boolean",
		"Columns",
		"Missing values",
		"16.7%",
		"city: Kyoto, Osaka, Tokyo",
	)
}

func TestCLI_InfoRejectsUnknownFormat(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := trySift(t, "info", "notes.txt"); err == nil || !strings.Contains(err.Error(), "unsupported input") {
		t.Fatalf("want unsupported input error, got %v", err)
	}
}

func TestCLI_Filter(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)

	out := runSift(t, "filter", path, "--search", "Tokyo")
	mustContain(t, out, "Filtered: 3 / 6 rows (50.0%)")

	out = runSift(t, "filter", path, "--num", "age=26..50", "--bool", "active=true")
	mustContain(t, out, "Filtered: 3 / 6 rows (50.0%)")

	out = runSift(t, "filter", path, "--date", "signup=2024-02-01..2024-04-30")
	mustContain(t, out, "Filtered: 3 / 6 rows (50.0%)")

	out = runSift(t, "filter", path, "--date", "signup=2024-04-01..")
	mustContain(t, out, "Filtered: 2 / 6 rows (33.3%)")
}

func TestCLI_FilterExport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "tokyo.csv")

	out := runSift(t, "filter", path, "--cat", "city=Tokyo", "--out", outPath)
	mustContain(t, out, "Filtered: 3 / 6 rows (50.0%)", "Saved 3 rows to")
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}

func TestCLI_FilterBadFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)

	if _, err := trySift(t, "filter", path, "--num", "age=low..50"); err == nil || !strings.Contains(err.Error(), "invalid --num min") {
		t.Fatalf("want parse error, got %v", err)
	}
	if _, err := trySift(t, "filter", path, "--num", "age=50..20"); err == nil || !strings.Contains(err.Error(), "greater than max") {
		t.Fatalf("want inverted range error, got %v", err)
	}
	if _, err := trySift(t, "filter", path, "--bool", "active=maybe"); err == nil || !strings.Contains(err.Error(), "want true or false") {
		t.Fatalf("want bool parse error, got %v", err)
	}
}

func TestCLI_Stats(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)

	out := runSift(t, "stats", path)
	mustContain(t, out,
		"Numeric summary",
		"Categorical summary",
		"Tokyo",
		"Correlation",
		"1.000",
		"-0.622",
	)
}

func TestCLI_Clean(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "cleaned.csv")

	out := runSift(t, "clean", path, "--fill", "mean", "--drop-dups", "--out", outPath)
	mustContain(t, out,
		"Loaded 6 rows x 6 columns",
		"Filled missing values (mean)",
		"Dropped duplicate rows: 5 remain",
		"Result: 5 rows x 6 columns",
		"Saved to",
	)
	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("cleaned file missing: %v", err)
	}

	// Null ages drop with the outliers, so Carol goes along with Dave.
	out = runSift(t, "clean", path, "--drop-outliers", "--outlier-cols", "age")
	mustContain(t, out, "Removed IQR outliers: 4 remain")
}

func TestCLI_Query(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)

	out := runSift(t, "query", path, "--sql", "SELECT name, score FROM df WHERE score >= 80")
	mustContain(t, out, "3 rows x 2 columns", "Carol")

	if _, err := trySift(t, "query", path); err == nil || !strings.Contains(err.Error(), "needs --sql") {
		t.Fatalf("want missing --sql error, got %v", err)
	}
}

func TestCLI_Plot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)
	chart := filepath.Join(t.TempDir(), "age.png")

	out := runSift(t, "plot", path, "--kind", "hist", "-x", "age", "-o", chart)
	mustContain(t, out, "Saved chart to")
	if fi, err := os.Stat(chart); err != nil || fi.Size() == 0 {
		t.Fatalf("chart missing: %v", err)
	}

	if _, err := trySift(t, "plot", path, "--kind", "scatter", "-x", "age"); err == nil || !strings.Contains(err.Error(), "needs -y") {
		t.Fatalf("want missing -y error, got %v", err)
	}
	if _, err := trySift(t, "plot", path, "--kind", "pie", "-x", "age"); err == nil || !strings.Contains(err.Error(), "unknown --kind") {
		t.Fatalf("want unknown kind error, got %v", err)
	}
}

func TestCLI_Export(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFixture(t)
	xlsx := filepath.Join(t.TempDir(), "data.xlsx")

	out := runSift(t, "export", path, "--out", xlsx)
	mustContain(t, out, "Saved 6 rows x 6 columns to")

	out = runSift(t, "info", xlsx)
	mustContain(t, out, "6 rows x 6 columns")
}

func TestCLI_ConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out := runSift(t, "config", "show")
	mustContain(t, out, "delimiter: ,", "log_level: info", "categorical_cap: 50")

	out = runSift(t, "config", "set", "categorical_cap", "10")
	mustContain(t, out, "Saved config")

	out = runSift(t, "config", "show")
	mustContain(t, out, "categorical_cap: 10")

	if _, err := trySift(t, "config", "set", "log_level", "verbose"); err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Fatalf("want log level validation error, got %v", err)
	}
	if _, err := trySift(t, "config", "set", "no_such_key", "1"); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("want unknown key error, got %v", err)
	}
}
