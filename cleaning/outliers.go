package cleaning

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// Outliers reports the IQR outlier count of one column.
type Outliers struct {
	Column string
	Count  int
	Pct    float64
}

// quantile returns the p-quantile of sorted xs, interpolating linearly
// between closest ranks. NaN for empty input.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-math.Floor(h))*(sorted[i+1]-sorted[i])
}

// iqrBounds computes the Tukey fences [Q1 - 1.5*IQR, Q3 + 1.5*IQR] for a
// numeric column. ok is false when the column has no non-null values.
func iqrBounds(c *frame.Column) (lower, upper float64, ok bool) {
	xs := c.ValidFloats()
	if len(xs) == 0 {
		return 0, 0, false
	}
	sort.Float64s(xs)
	q1 := quantile(xs, 0.25)
	q3 := quantile(xs, 0.75)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr, true
}

// numericTargets resolves the analysed columns: all numeric columns when
// names is empty, otherwise the named columns, which must exist and be
// numeric.
func numericTargets(op string, f *frame.Frame, names []string) ([]string, error) {
	if len(names) == 0 {
		return f.ColumnsOf(frame.DTypeNumeric), nil
	}
	for _, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType() != frame.DTypeNumeric {
			return nil, errors.NewTypeMismatchError(op, name, frame.DTypeNumeric.String(), c.DType().String())
		}
	}
	return names, nil
}

// DetectOutliersIQR counts, per column, the values outside the Tukey
// fences. Null cells are never outliers. With no explicit columns every
// numeric column is analysed.
func DetectOutliersIQR(f *frame.Frame, cols ...string) ([]Outliers, error) {
	targets, err := numericTargets("cleaning.DetectOutliersIQR", f, cols)
	if err != nil {
		return nil, err
	}
	total := f.NumRows()
	out := make([]Outliers, 0, len(targets))
	for _, name := range targets {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		count := 0
		if lower, upper, ok := iqrBounds(c); ok {
			for i, v := range c.Floats() {
				if c.IsValid(i) && (v < lower || v > upper) {
					count++
				}
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		out = append(out, Outliers{Column: name, Count: count, Pct: pct})
	}
	return out, nil
}

// RemoveOutliersIQR drops the rows that fall outside the Tukey fences,
// handling columns one at a time: each column's fences are computed over
// the rows that survived the columns before it. Rows with a null in an
// examined column drop out with the outliers; an all-null column is
// skipped.
func RemoveOutliersIQR(f *frame.Frame, cols ...string) (*frame.Frame, error) {
	targets, err := numericTargets("cleaning.RemoveOutliersIQR", f, cols)
	if err != nil {
		return nil, err
	}
	cur := f
	for _, name := range targets {
		c, err := cur.Column(name)
		if err != nil {
			return nil, err
		}
		lower, upper, ok := iqrBounds(c)
		if !ok {
			continue
		}
		keep := make([]bool, cur.NumRows())
		for i, v := range c.Floats() {
			keep[i] = c.IsValid(i) && v >= lower && v <= upper
		}
		cur = cur.SelectMask(keep)
	}
	if cur == f {
		return f.Copy(), nil
	}
	return cur, nil
}
