package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/frame"
)

func TestCategoricalSummary(t *testing.T) {
	f, err := frame.New(
		frame.NewCategoricalColumn("city", []string{"Tokyo", "Osaka", "Tokyo", ""}, []bool{true, true, true, false}),
		frame.NewNumericColumn("age", []float64{30, 41, 52, 28}, nil),
		frame.NewBooleanColumn("active", []bool{true, true, false, true}, nil),
	)
	require.NoError(t, err)

	summaries := CategoricalSummary(f)
	require.Len(t, summaries, 2, "numeric columns are not summarized")

	assert.Equal(t, CategoryStat{Column: "city", Unique: 2, Top: "Tokyo", Freq: 2}, summaries[0])
	assert.Equal(t, CategoryStat{Column: "active", Unique: 2, Top: "true", Freq: 3}, summaries[1])
}

func TestCategoricalSummaryTieTakesSmallest(t *testing.T) {
	f, err := frame.New(
		frame.NewCategoricalColumn("tag", []string{"b", "a"}, nil),
	)
	require.NoError(t, err)

	summaries := CategoricalSummary(f)
	require.Len(t, summaries, 1)
	assert.Equal(t, "a", summaries[0].Top)
	assert.Equal(t, 1, summaries[0].Freq)
}

func TestCategoricalSummaryAllNull(t *testing.T) {
	f, err := frame.New(
		frame.NewCategoricalColumn("tag", []string{"", ""}, []bool{false, false}),
	)
	require.NoError(t, err)

	summaries := CategoricalSummary(f)
	require.Len(t, summaries, 1)
	assert.Equal(t, CategoryStat{Column: "tag", Unique: 0, Top: "", Freq: 0}, summaries[0])
}

func TestCategoricalSummaryNoneApplicable(t *testing.T) {
	f, err := frame.New(frame.NewNumericColumn("v", []float64{1, 2}, nil))
	require.NoError(t, err)
	assert.Empty(t, CategoricalSummary(f))
}
