// Package frame provides the typed, column-oriented table that every other
// package operates on. A Frame is a set of equal-length typed columns
// (numeric, categorical, datetime, boolean) with per-cell validity masks.
//
// Frames are treated as immutable by the rest of the module: operations such
// as Select, Head, and WithColumn build new frames and never modify the
// receiver, so a raw frame, its cleaned derivation, and a filtered view can
// safely share a process.
package frame

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// Frame is an ordered collection of equal-length typed columns.
type Frame struct {
	cols   []*Column
	byName map[string]int
}

// New builds a frame from columns. All columns must have the same length and
// distinct names.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{byName: make(map[string]int, len(cols))}
	for _, c := range cols {
		if c == nil {
			return nil, errors.NewValueError("frame.New", "nil column")
		}
		if _, dup := f.byName[c.name]; dup {
			return nil, errors.NewValueError("frame.New", fmt.Sprintf("duplicate column name '%s'", c.name))
		}
		if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
			return nil, errors.NewDimensionError("frame.New", f.cols[0].Len(), c.Len(), 0)
		}
		f.byName[c.name] = len(f.cols)
		f.cols = append(f.cols, c)
	}
	return f, nil
}

// Empty returns a frame with no columns and no rows.
func Empty() *Frame {
	return &Frame{byName: make(map[string]int)}
}

// NumRows returns the row count. A frame with no columns has zero rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Shape returns (rows, columns).
func (f *Frame) Shape() (int, int) { return f.NumRows(), f.NumCols() }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// ColumnsOf returns the names of all columns with the given dtype, in order.
func (f *Frame) ColumnsOf(t DType) []string {
	var names []string
	for _, c := range f.cols {
		if c.dtype == t {
			names = append(names, c.name)
		}
	}
	return names
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.byName[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("frame.Column", name)
	}
	return f.cols[i], nil
}

// ColumnAt returns the column at position i.
func (f *Frame) ColumnAt(i int) *Column { return f.cols[i] }

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := &Frame{
		cols:   make([]*Column, len(f.cols)),
		byName: make(map[string]int, len(f.cols)),
	}
	for i, c := range f.cols {
		out.cols[i] = c.copyColumn()
		out.byName[c.name] = i
	}
	return out
}

// Select builds a new frame holding the given rows, in order. Row indexes
// must be valid for the frame; they may repeat.
func (f *Frame) Select(rows []int) *Frame {
	out := &Frame{
		cols:   make([]*Column, len(f.cols)),
		byName: make(map[string]int, len(f.cols)),
	}
	for i, c := range f.cols {
		out.cols[i] = c.take(rows)
		out.byName[c.name] = i
	}
	return out
}

// SelectMask builds a new frame holding the rows where keep is true. The mask
// must have one entry per row.
func (f *Frame) SelectMask(keep []bool) *Frame {
	rows := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			rows = append(rows, i)
		}
	}
	return f.Select(rows)
}

// Head returns the first n rows. If n exceeds the row count the whole frame
// is returned.
func (f *Frame) Head(n int) *Frame {
	if n > f.NumRows() {
		n = f.NumRows()
	}
	if n < 0 {
		n = 0
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return f.Select(rows)
}

// SelectColumns returns a new frame holding only the named columns, in the
// requested order.
func (f *Frame) SelectColumns(names ...string) (*Frame, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		i, ok := f.byName[name]
		if !ok {
			return nil, errors.NewColumnNotFoundError("frame.SelectColumns", name)
		}
		cols = append(cols, f.cols[i].copyColumn())
	}
	return New(cols...)
}

// DropColumns returns a new frame without the named columns.
func (f *Frame) DropColumns(names ...string) (*Frame, error) {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !f.Has(name) {
			return nil, errors.NewColumnNotFoundError("frame.DropColumns", name)
		}
		drop[name] = struct{}{}
	}
	cols := make([]*Column, 0, len(f.cols))
	for _, c := range f.cols {
		if _, gone := drop[c.name]; gone {
			continue
		}
		cols = append(cols, c.copyColumn())
	}
	return New(cols...)
}

// Rename returns a new frame with the column old renamed to new.
func (f *Frame) Rename(old, new string) (*Frame, error) {
	if !f.Has(old) {
		return nil, errors.NewColumnNotFoundError("frame.Rename", old)
	}
	if old != new && f.Has(new) {
		return nil, errors.NewValueError("frame.Rename", fmt.Sprintf("column '%s' already exists", new))
	}
	cols := make([]*Column, 0, len(f.cols))
	for _, c := range f.cols {
		if c.name == old {
			cols = append(cols, c.WithName(new))
			continue
		}
		cols = append(cols, c.copyColumn())
	}
	return New(cols...)
}

// WithColumn returns a new frame where col replaces the column of the same
// name, or is appended if no such column exists. The column length must match
// the frame's row count unless the frame has no columns yet.
func (f *Frame) WithColumn(col *Column) (*Frame, error) {
	if col == nil {
		return nil, errors.NewValueError("frame.WithColumn", "nil column")
	}
	if len(f.cols) > 0 && col.Len() != f.NumRows() {
		return nil, errors.NewDimensionError("frame.WithColumn", f.NumRows(), col.Len(), 0)
	}
	cols := make([]*Column, 0, len(f.cols)+1)
	replaced := false
	for _, c := range f.cols {
		if c.name == col.name {
			cols = append(cols, col.copyColumn())
			replaced = true
			continue
		}
		cols = append(cols, c.copyColumn())
	}
	if !replaced {
		cols = append(cols, col.copyColumn())
	}
	return New(cols...)
}

// Equal reports value equality with other: same column names in the same
// order, same dtypes, same validity, and equal cell values.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || len(f.cols) != len(other.cols) {
		return false
	}
	for i, c := range f.cols {
		if !c.Equal(other.cols[i]) {
			return false
		}
	}
	return true
}

const previewRows = 10

// String renders a short preview of the frame: column headers, up to ten
// rows, and a shape footer. Null cells render as NaN.
func (f *Frame) String() string {
	var b strings.Builder
	for _, c := range f.cols {
		b.WriteString(fmt.Sprintf("%-15s", c.name))
	}
	b.WriteString("\n")
	for range f.cols {
		b.WriteString(strings.Repeat("-", 15))
	}
	b.WriteString("\n")

	n := f.NumRows()
	shown := n
	if shown > previewRows {
		shown = previewRows
	}
	for i := 0; i < shown; i++ {
		for _, c := range f.cols {
			cell := c.CellString(i)
			if !c.IsValid(i) {
				cell = "NaN"
			}
			b.WriteString(fmt.Sprintf("%-15s", cell))
		}
		b.WriteString("\n")
	}
	if n > shown {
		b.WriteString("...\n")
	}
	b.WriteString(fmt.Sprintf("[%d rows x %d columns]", n, f.NumCols()))
	return b.String()
}
