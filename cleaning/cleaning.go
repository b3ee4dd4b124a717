// Package cleaning is the data fixing pass between upload and analysis:
// missing value summaries and fills, duplicate removal, IQR outlier
// handling, and column renames, casts, and drops. Every function is pure;
// the input frame is never mutated and results are always new frames.
package cleaning

import (
	"sort"

	"github.com/YuminosukeSato/siftgo/frame"
)

// Missing reports the null count of one column.
type Missing struct {
	Column string
	Count  int
	Pct    float64
}

// MissingSummary reports the null count and percentage of every column, in
// frame column order.
func MissingSummary(f *frame.Frame) []Missing {
	total := f.NumRows()
	out := make([]Missing, 0, f.NumCols())
	for j := 0; j < f.NumCols(); j++ {
		c := f.ColumnAt(j)
		count := c.NullCount()
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		out = append(out, Missing{Column: c.Name(), Count: count, Pct: pct})
	}
	return out
}

// DropMissing drops every row containing at least one null cell.
func DropMissing(f *frame.Frame) *frame.Frame {
	keep := make([]bool, f.NumRows())
	for i := range keep {
		keep[i] = true
		for j := 0; j < f.NumCols(); j++ {
			if !f.ColumnAt(j).IsValid(i) {
				keep[i] = false
				break
			}
		}
	}
	return f.SelectMask(keep)
}

// Rename renames columns per the old name to new name mapping. Renames are
// applied in lexical order of the old names, so the result does not depend
// on map iteration order.
func Rename(f *frame.Frame, names map[string]string) (*frame.Frame, error) {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := f
	for _, old := range keys {
		var err error
		out, err = out.Rename(old, names[old])
		if err != nil {
			return nil, err
		}
	}
	if out == f {
		return f.Copy(), nil
	}
	return out, nil
}

// Cast converts a column to the target dtype. Cells that do not parse under
// the target dtype become null instead of failing the whole column.
func Cast(f *frame.Frame, column string, target frame.DType) (*frame.Frame, error) {
	c, err := f.Column(column)
	if err != nil {
		return nil, err
	}
	cast, err := frame.CastColumn(c, target)
	if err != nil {
		return nil, err
	}
	return f.WithColumn(cast)
}

// DropColumns removes the named columns.
func DropColumns(f *frame.Frame, cols ...string) (*frame.Frame, error) {
	return f.DropColumns(cols...)
}
