package filter

import (
	"sort"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// MaxCategoricalOptions caps how many distinct values a categorical column
// may have before option listing is refused. The cap protects option pickers
// from unbounded cardinality; CategoricalFilter itself has no cap.
const MaxCategoricalOptions = 50

// ColumnTypes groups column names by the filter category they belong to.
type ColumnTypes struct {
	Numeric     []string
	Categorical []string
	Datetime    []string
	Boolean     []string
}

// Total returns the number of classified columns.
func (ct ColumnTypes) Total() int {
	return len(ct.Numeric) + len(ct.Categorical) + len(ct.Datetime) + len(ct.Boolean)
}

// Detect classifies every column of f into one of the four filter
// categories. Checks run in priority order datetime, boolean, numeric;
// everything else is categorical. An empty frame yields four empty lists.
func Detect(f *frame.Frame) ColumnTypes {
	var ct ColumnTypes
	for i := 0; i < f.NumCols(); i++ {
		c := f.ColumnAt(i)
		switch c.DType() {
		case frame.DTypeDatetime:
			ct.Datetime = append(ct.Datetime, c.Name())
		case frame.DTypeBoolean:
			ct.Boolean = append(ct.Boolean, c.Name())
		case frame.DTypeNumeric:
			ct.Numeric = append(ct.Numeric, c.Name())
		default:
			ct.Categorical = append(ct.Categorical, c.Name())
		}
	}
	return ct
}

// CategoricalOptions returns the distinct non-null values of a categorical
// column in ascending order, for use as membership options. Columns with
// more than MaxCategoricalOptions distinct values yield a CardinalityWarning
// and no options.
func CategoricalOptions(f *frame.Frame, column string) ([]string, error) {
	c, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	uniques := c.Uniques()
	if len(uniques) > MaxCategoricalOptions {
		return nil, errors.NewCardinalityWarning(column, len(uniques), MaxCategoricalOptions)
	}
	sort.Strings(uniques)
	return uniques, nil
}
