package filter

import (
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// NumericRangeFilter keeps rows whose numeric cell lies inside the inclusive
// [Min, Max] interval. Null cells drop out.
type NumericRangeFilter struct {
	Column string
	Min    float64
	Max    float64
}

// Name implements Filter.
func (n *NumericRangeFilter) Name() string { return "numeric" }

// Apply implements Filter.
func (n *NumericRangeFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if err := errors.CheckScalar("NumericRangeFilter.Apply", n.Min); err != nil {
		return nil, err
	}
	if err := errors.CheckScalar("NumericRangeFilter.Apply", n.Max); err != nil {
		return nil, err
	}

	c, err := f.Column(n.Column)
	if err != nil {
		return nil, err
	}
	if c.DType() != frame.DTypeNumeric {
		return nil, errors.NewTypeMismatchError("NumericRangeFilter.Apply", n.Column,
			frame.DTypeNumeric.String(), c.DType().String())
	}

	vals := c.Floats()
	keep := make([]bool, f.NumRows())
	for i := range keep {
		if !c.IsValid(i) {
			continue
		}
		v := vals[i]
		keep[i] = v >= n.Min && v <= n.Max
	}
	return f.SelectMask(keep), nil
}
