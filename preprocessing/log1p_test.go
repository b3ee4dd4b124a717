package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
)

func TestLog1pTransformer(t *testing.T) {
	c := frame.NewNumericColumn("income", []float64{0, 3, 9, math.NaN()}, nil)
	f, err := frame.New(c)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	out, err := tr.FitTransform(f)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.Shift["income"], "positive columns need no shift")

	got, err := out.Column("income")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Float(0))
	assert.InDelta(t, 1.3862943611198906, got.Float(1), 1e-15)
	assert.InDelta(t, math.Log(10), got.Float(2), 1e-15)
	assert.False(t, got.IsValid(3))
}

func TestLog1pTransformerLearnsShift(t *testing.T) {
	c := frame.NewNumericColumn("delta", []float64{-5, 0, 10}, nil)
	f, err := frame.New(c)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	out, err := tr.FitTransform(f)
	require.NoError(t, err)

	assert.Equal(t, 6.0, tr.Shift["delta"], "shift is |min| + 1 when min <= -1")

	got, err := out.Column("delta")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), got.Float(0), 1e-15)
	assert.InDelta(t, math.Log(7), got.Float(1), 1e-15)
	assert.InDelta(t, math.Log(17), got.Float(2), 1e-15)
}

func TestLog1pTransformerNoShiftAboveMinusOne(t *testing.T) {
	c := frame.NewNumericColumn("v", []float64{-0.5, 1}, nil)
	f, err := frame.New(c)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	out, err := tr.FitTransform(f)
	require.NoError(t, err)

	assert.Equal(t, 0.0, tr.Shift["v"])
	got, err := out.Column("v")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.5), got.Float(0), 1e-15)
}

func TestLog1pTransformerOutOfDomainBecomesNull(t *testing.T) {
	train := frame.NewNumericColumn("v", []float64{1, 2, 3}, nil)
	ftrain, err := frame.New(train)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	require.NoError(t, tr.Fit(ftrain))

	test := frame.NewNumericColumn("v", []float64{2, -4}, nil)
	ftest, err := frame.New(test)
	require.NoError(t, err)

	out, err := tr.Transform(ftest)
	require.NoError(t, err)

	got, err := out.Column("v")
	require.NoError(t, err)
	assert.True(t, got.IsValid(0))
	assert.False(t, got.IsValid(1), "value below the log1p domain becomes null")
}

func TestLog1pTransformerRoundTrip(t *testing.T) {
	c := frame.NewNumericColumn("v", []float64{-3, 0, 2.5, 100}, nil)
	f, err := frame.New(c)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	scaled, err := tr.FitTransform(f)
	require.NoError(t, err)
	back, err := tr.InverseTransform(scaled)
	require.NoError(t, err)

	got, err := back.Column("v")
	require.NoError(t, err)
	for i, want := range []float64{-3, 0, 2.5, 100} {
		assert.InDelta(t, want, got.Float(i), 1e-9)
	}
}

func TestLog1pTransformerNotFitted(t *testing.T) {
	c := frame.NewNumericColumn("v", []float64{1, 2}, nil)
	f, err := frame.New(c)
	require.NoError(t, err)

	tr := NewLog1pTransformer()
	_, err = tr.Transform(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not fitted")
}
