package explore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
)

func TestDescribe(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("price", []float64{1, 2, 3, 4, 10}, nil),
		frame.NewCategoricalColumn("tag", []string{"a", "b", "c", "d", "e"}, nil),
	)
	require.NoError(t, err)

	summaries := Describe(f)
	require.Len(t, summaries, 1, "only numeric columns are profiled")

	s := summaries[0]
	assert.Equal(t, "price", s.Column)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 4.0, s.Mean)
	assert.InDelta(t, 3.5355339059327378, s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 2.0, s.Q25)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 4.0, s.Q75)
	assert.Equal(t, 10.0, s.Max)
	assert.InDelta(t, 1.697056274847714, s.Skew, 1e-9)
	assert.InDelta(t, 3.152, s.Kurtosis, 1e-9)
}

func TestDescribeSkipsNulls(t *testing.T) {
	f, err := frame.New(
		frame.NewNumericColumn("price", []float64{1, 2, 3, 4, 10, math.NaN()}, nil),
	)
	require.NoError(t, err)

	s := Describe(f)[0]
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 4.0, s.Mean)
}

func TestDescribeSmallCounts(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		f, err := frame.New(frame.NewNumericColumn("v", []float64{5}, nil))
		require.NoError(t, err)

		s := Describe(f)[0]
		assert.Equal(t, 1, s.Count)
		assert.Equal(t, 5.0, s.Mean)
		assert.True(t, math.IsNaN(s.Std), "std needs two values")
		assert.Equal(t, 5.0, s.Median)
		assert.True(t, math.IsNaN(s.Skew))
		assert.True(t, math.IsNaN(s.Kurtosis))
	})

	t.Run("three values", func(t *testing.T) {
		f, err := frame.New(frame.NewNumericColumn("v", []float64{1, 2, 3}, nil))
		require.NoError(t, err)

		s := Describe(f)[0]
		assert.InDelta(t, 0, s.Skew, 1e-12, "symmetric sample")
		assert.True(t, math.IsNaN(s.Kurtosis), "kurtosis needs four values")
	})

	t.Run("all null", func(t *testing.T) {
		f, err := frame.New(frame.NewNumericColumn("v", []float64{math.NaN(), math.NaN()}, nil))
		require.NoError(t, err)

		s := Describe(f)[0]
		assert.Equal(t, 0, s.Count)
		assert.True(t, math.IsNaN(s.Mean))
		assert.True(t, math.IsNaN(s.Min))
	})
}

func TestDescribeManyRows(t *testing.T) {
	n := 12000
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i % 10)
	}
	f, err := frame.New(
		frame.NewNumericColumn("a", vals, nil),
		frame.NewNumericColumn("b", vals, nil),
		frame.NewNumericColumn("c", vals, nil),
	)
	require.NoError(t, err)

	summaries := Describe(f)
	require.Len(t, summaries, 3)
	for _, s := range summaries {
		assert.Equal(t, n, s.Count)
		assert.InDelta(t, 4.5, s.Mean, 1e-12)
		assert.InDelta(t, 2.8724010091379024, s.Std, 1e-9)
		assert.Equal(t, 0.0, s.Min)
		assert.Equal(t, 9.0, s.Max)
		assert.Equal(t, 4.5, s.Median)
	}
}

func BenchmarkDescribe(b *testing.B) {
	n := 50000
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i%997) / 7
	}
	f, err := frame.New(
		frame.NewNumericColumn("a", vals, nil),
		frame.NewNumericColumn("b", vals, nil),
		frame.NewNumericColumn("c", vals, nil),
		frame.NewNumericColumn("d", vals, nil),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Describe(f)
	}
}
