package filter

import (
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// BooleanFilter keeps rows matching the three-state choice: BoolTrue keeps
// true cells, BoolFalse keeps false cells, BoolAny keeps everything. Null
// cells drop out under an active choice.
type BooleanFilter struct {
	Column string
	Choice BoolChoice
}

// Name implements Filter.
func (b *BooleanFilter) Name() string { return "boolean" }

// Apply implements Filter.
func (b *BooleanFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if b.Choice == BoolAny {
		return f, nil
	}

	c, err := f.Column(b.Column)
	if err != nil {
		return nil, err
	}
	if c.DType() != frame.DTypeBoolean {
		return nil, errors.NewTypeMismatchError("BooleanFilter.Apply", b.Column,
			frame.DTypeBoolean.String(), c.DType().String())
	}

	want := b.Choice == BoolTrue
	vals := c.Bools()
	keep := make([]bool, f.NumRows())
	for i := range keep {
		keep[i] = c.IsValid(i) && vals[i] == want
	}
	return f.SelectMask(keep), nil
}
