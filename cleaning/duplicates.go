package cleaning

import (
	"strings"

	"github.com/YuminosukeSato/siftgo/frame"
)

// rowKey builds an identity string for row i. Null cells get a marker byte
// outside the rendered alphabet so a null and an empty string stay distinct.
func rowKey(f *frame.Frame, i int) string {
	var b strings.Builder
	for j := 0; j < f.NumCols(); j++ {
		if j > 0 {
			b.WriteByte(0x1f)
		}
		c := f.ColumnAt(j)
		if !c.IsValid(i) {
			b.WriteByte(0x00)
			continue
		}
		b.WriteString(c.CellString(i))
	}
	return b.String()
}

// DuplicateSummary counts the rows that belong to a duplicate group, first
// occurrences included, and returns those rows in input order.
func DuplicateSummary(f *frame.Frame) (int, *frame.Frame) {
	n := f.NumRows()
	counts := make(map[string]int, n)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		k := rowKey(f, i)
		keys[i] = k
		counts[k]++
	}
	var dup []int
	for i, k := range keys {
		if counts[k] > 1 {
			dup = append(dup, i)
		}
	}
	return len(dup), f.Select(dup)
}

// DropDuplicates keeps the first occurrence of each distinct row.
func DropDuplicates(f *frame.Frame) *frame.Frame {
	seen := make(map[string]struct{}, f.NumRows())
	var keep []int
	for i := 0; i < f.NumRows(); i++ {
		k := rowKey(f, i)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keep = append(keep, i)
	}
	return f.Select(keep)
}
