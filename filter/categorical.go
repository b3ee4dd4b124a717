package filter

import (
	"github.com/YuminosukeSato/siftgo/frame"
)

// CategoricalFilter keeps rows whose cell is a member of the selected value
// set. Membership compares the cell's text form, so the filter also works on
// non-categorical columns. An empty selection keeps everything, and the set
// size is unbounded regardless of the option-listing cap.
type CategoricalFilter struct {
	Column   string
	Selected []string
}

// Name implements Filter.
func (c *CategoricalFilter) Name() string { return "categorical" }

// Apply implements Filter.
func (c *CategoricalFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if len(c.Selected) == 0 {
		return f, nil
	}

	col, err := f.Column(c.Column)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(c.Selected))
	for _, v := range c.Selected {
		set[v] = struct{}{}
	}

	keep := make([]bool, f.NumRows())
	for i := range keep {
		if !col.IsValid(i) {
			continue
		}
		if _, ok := set[col.CellString(i)]; ok {
			keep[i] = true
		}
	}
	return f.SelectMask(keep), nil
}
