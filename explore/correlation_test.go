package explore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
)

func TestCorrelation(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("x", []float64{1, 2, 3, 4}, nil),
		frame.NewNumericColumn("y", []float64{2, 4, 6, 8}, nil),
		frame.NewNumericColumn("z", []float64{4, 3, 2, 1}, nil),
		frame.NewCategoricalColumn("tag", []string{"a", "b", "c", "d"}, nil),
	)
	require.NoError(t, err)

	corr, err := Correlation(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, corr.Columns)

	assert.InDelta(t, 1, corr.Matrix.At(0, 1), 1e-12, "x and y move together")
	assert.InDelta(t, -1, corr.Matrix.At(0, 2), 1e-12, "x and z move against each other")
	assert.Equal(t, corr.Matrix.At(0, 1), corr.Matrix.At(1, 0))
	for i := range corr.Columns {
		assert.InDelta(t, 1, corr.Matrix.At(i, i), 1e-12)
	}
}

func TestCorrelationPairwiseComplete(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("a", []float64{1, 2, 3, 4, math.NaN()}, nil),
		frame.NewNumericColumn("b", []float64{2, 4, 6, 8, 1000}, nil),
	)
	require.NoError(t, err)

	corr, err := Correlation(f)
	require.NoError(t, err)
	assert.InDelta(t, 1, corr.Matrix.At(0, 1), 1e-12,
		"the row where a is null stays out of the pair")
}

func TestCorrelationConstantColumn(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("x", []float64{1, 2, 3, 4}, nil),
		frame.NewNumericColumn("c", []float64{5, 5, 5, 5}, nil),
	)
	require.NoError(t, err)

	corr, err := Correlation(f)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(corr.Matrix.At(0, 1)))
}

func TestCorrelationSelection(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("x", []float64{1, 2, 3, 4}, nil),
		frame.NewNumericColumn("y", []float64{2, 4, 6, 8}, nil),
		frame.NewCategoricalColumn("tag", []string{"a", "b", "c", "d"}, nil),
	)
	require.NoError(t, err)

	corr, err := Correlation(f, "y", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, corr.Columns, "selection order is kept")
	assert.InDelta(t, 1, corr.Matrix.At(0, 1), 1e-12)

	_, err = Correlation(f, "ghost")
	assert.Error(t, err)

	_, err = Correlation(f, "tag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want numeric")
}

func TestCorrelationNoNumericColumns(t *testing.T) {
	f, err := frame.New(frame.NewCategoricalColumn("tag", []string{"a"}, nil))
	require.NoError(t, err)

	_, err = Correlation(f)
	assert.Error(t, err)
}
