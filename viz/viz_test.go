package viz

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/session"
)

func vizFrame(t *testing.T) *frame.Frame {
	t.Helper()
	days := make([]time.Time, 10)
	for i := range days {
		days[i] = time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC)
	}
	price := frame.NewNumericColumn("price",
		[]float64{10, 12, 11, 14, 13, 15, 9, 8, 12, math.NaN()}, nil)
	score := frame.NewNumericColumn("score",
		[]float64{20, 24, 22, 28, 26, 30, 18, 16, 24, 22}, nil)
	city := frame.NewCategoricalColumn("city",
		[]string{"Tokyo", "Osaka", "Tokyo", "Kyoto", "Osaka", "Tokyo", "Kyoto", "Tokyo", "Osaka", "Kyoto"}, nil)
	day := frame.NewDatetimeColumn("day", days, nil)
	f, err := frame.New(price, score, city, day)
	require.NoError(t, err)
	return f
}

// requireChart checks that the renderer saved a non-empty file at path.
func requireChart(t *testing.T, got string, err error, path string) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, path, got)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogram(t *testing.T) {
	f := vizFrame(t)
	path := filepath.Join(t.TempDir(), "hist.png")

	got, err := Histogram(f, "price", path, WithBins(5))
	requireChart(t, got, err, path)
}

func TestHistogramErrors(t *testing.T) {
	f := vizFrame(t)
	dir := t.TempDir()

	t.Run("non-numeric column", func(t *testing.T) {
		_, err := Histogram(f, "city", filepath.Join(dir, "a.png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want numeric")
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := Histogram(f, "ghost", filepath.Join(dir, "b.png"))
		assert.Error(t, err)
	})

	t.Run("all-null column", func(t *testing.T) {
		c := frame.NewNumericColumn("v", []float64{math.NaN(), math.NaN()}, nil)
		nf, err := frame.New(c)
		require.NoError(t, err)
		_, err = Histogram(nf, "v", filepath.Join(dir, "c.png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no non-null values")
	})
}

func TestBar(t *testing.T) {
	f := vizFrame(t)
	path := filepath.Join(t.TempDir(), "bar.svg")

	got, err := Bar(f, "city", path)
	requireChart(t, got, err, path)
}

func TestBarRejectsNumeric(t *testing.T) {
	f := vizFrame(t)
	_, err := Bar(f, "price", filepath.Join(t.TempDir(), "bar.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want categorical")
}

func TestScatter(t *testing.T) {
	f := vizFrame(t)
	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		path := filepath.Join(dir, "scatter.png")
		got, err := Scatter(f, "price", "score", path)
		requireChart(t, got, err, path)
	})

	t.Run("colored by category", func(t *testing.T) {
		path := filepath.Join(dir, "scatter_by_city.png")
		got, err := Scatter(f, "price", "score", path, WithColorBy("city"))
		requireChart(t, got, err, path)
	})

	t.Run("color column must be categorical", func(t *testing.T) {
		_, err := Scatter(f, "price", "score", filepath.Join(dir, "bad.png"), WithColorBy("score"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want categorical")
	})
}

func TestLine(t *testing.T) {
	f := vizFrame(t)
	dir := t.TempDir()

	t.Run("datetime x", func(t *testing.T) {
		path := filepath.Join(dir, "line.png")
		got, err := Line(f, "day", "score", path)
		requireChart(t, got, err, path)
	})

	t.Run("numeric x", func(t *testing.T) {
		path := filepath.Join(dir, "line_numeric.png")
		got, err := Line(f, "score", "price", path)
		requireChart(t, got, err, path)
	})

	t.Run("categorical x rejected", func(t *testing.T) {
		_, err := Line(f, "city", "score", filepath.Join(dir, "bad.png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want datetime")
	})
}

func TestBox(t *testing.T) {
	f := vizFrame(t)
	dir := t.TempDir()

	t.Run("single box", func(t *testing.T) {
		path := filepath.Join(dir, "box.png")
		got, err := Box(f, "score", path)
		requireChart(t, got, err, path)
	})

	t.Run("grouped", func(t *testing.T) {
		path := filepath.Join(dir, "box_by_city.png")
		got, err := Box(f, "score", path, WithGroupBy("city"))
		requireChart(t, got, err, path)
	})

	t.Run("group column must be categorical", func(t *testing.T) {
		_, err := Box(f, "score", filepath.Join(dir, "bad.png"), WithGroupBy("price"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want categorical")
	})
}

func TestCorrelationHeatmap(t *testing.T) {
	f := vizFrame(t)
	path := filepath.Join(t.TempDir(), "corr.png")

	got, err := CorrelationHeatmap(f, path, WithTitle("price vs score"))
	requireChart(t, got, err, path)
}

func TestCorrelationHeatmapUndefinedCells(t *testing.T) {
	// A constant column has no defined correlation with anything; the
	// heatmap still renders with those cells at the midpoint.
	a := frame.NewNumericColumn("a", []float64{1, 2, 3, 4}, nil)
	b := frame.NewNumericColumn("b", []float64{5, 5, 5, 5}, nil)
	f, err := frame.New(a, b)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corr.png")
	got, err := CorrelationHeatmap(f, path)
	requireChart(t, got, err, path)
}

func TestChartRegistersInStore(t *testing.T) {
	f := vizFrame(t)
	store := session.New()
	dir := t.TempDir()

	histPath := filepath.Join(dir, "hist.png")
	_, err := Histogram(f, "score", histPath, WithStore(store))
	require.NoError(t, err)

	barPath := filepath.Join(dir, "bar.png")
	_, err = Bar(f, "city", barPath, WithStore(store))
	require.NoError(t, err)

	assert.Equal(t, []string{histPath, barPath}, store.Charts())
}

func TestChartWithoutStoreRegistersNothing(t *testing.T) {
	f := vizFrame(t)
	path := filepath.Join(t.TempDir(), "hist.png")
	_, err := Histogram(f, "score", path)
	require.NoError(t, err)
}

func TestSaveFailure(t *testing.T) {
	f := vizFrame(t)
	_, err := Histogram(f, "score", filepath.Join(t.TempDir(), "missing", "hist.png"))
	assert.Error(t, err, "saving into a directory that does not exist fails")
}
