package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// typedFrame returns a small frame with one column of each filter category
// plus a second numeric column.
func typedFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NewNumericColumn("age", []float64{29, 41, 35}, nil),
		frame.NewNumericColumn("salary", []float64{5200, 7100, 6300}, nil),
		frame.NewCategoricalColumn("city", []string{"Tokyo", "Osaka", "Kyoto"}, nil),
		frame.NewDatetimeColumn("joined", []time.Time{
			time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2022, 10, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		}, nil),
		frame.NewBooleanColumn("active", []bool{true, false, true}, nil),
	)
	require.NoError(t, err)
	return f
}

func TestDetect(t *testing.T) {
	ct := Detect(typedFrame(t))

	assert.Equal(t, []string{"age", "salary"}, ct.Numeric)
	assert.Equal(t, []string{"city"}, ct.Categorical)
	assert.Equal(t, []string{"joined"}, ct.Datetime)
	assert.Equal(t, []string{"active"}, ct.Boolean)
	assert.Equal(t, 5, ct.Total())
}

func TestDetectEmptyFrame(t *testing.T) {
	ct := Detect(frame.Empty())
	assert.Zero(t, ct.Total())
}

func TestCategoricalOptions(t *testing.T) {
	f, err := frame.New(
		frame.NewCategoricalColumn("city",
			[]string{"Tokyo", "Osaka", "", "Kyoto", "Osaka"},
			[]bool{true, true, false, true, true}),
	)
	require.NoError(t, err)

	opts, err := CategoricalOptions(f, "city")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kyoto", "Osaka", "Tokyo"}, opts,
		"options are distinct, non-null, and ascending")
}

func TestCategoricalOptionsCardinalityCap(t *testing.T) {
	vals := make([]string, MaxCategoricalOptions+10)
	for i := range vals {
		vals[i] = fmt.Sprintf("sku-%03d", i)
	}
	f, err := frame.New(frame.NewCategoricalColumn("sku", vals, nil))
	require.NoError(t, err)

	opts, err := CategoricalOptions(f, "sku")
	assert.Nil(t, opts)

	var cw *errors.CardinalityWarning
	require.ErrorAs(t, err, &cw)
	assert.Equal(t, MaxCategoricalOptions+10, cw.Unique)
	assert.Equal(t, MaxCategoricalOptions, cw.Limit)
}

func TestCategoricalOptionsMissingColumn(t *testing.T) {
	_, err := CategoricalOptions(typedFrame(t), "department")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "department")
}
