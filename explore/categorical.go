package explore

import "github.com/YuminosukeSato/siftgo/frame"

// CategoryStat summarizes one categorical or boolean column: the distinct
// non-null value count, the most frequent value in rendered form, and how
// often it occurs. Ties go to the lexically smallest value.
type CategoryStat struct {
	Column string
	Unique int
	Top    string
	Freq   int
}

// CategoricalSummary summarizes every categorical and boolean column of f,
// in frame column order.
func CategoricalSummary(f *frame.Frame) []CategoryStat {
	var out []CategoryStat
	for j := 0; j < f.NumCols(); j++ {
		c := f.ColumnAt(j)
		if c.DType() != frame.DTypeCategorical && c.DType() != frame.DTypeBoolean {
			continue
		}
		cs := CategoryStat{Column: c.Name(), Unique: c.NUnique()}
		counts := make(map[string]int)
		for i := 0; i < c.Len(); i++ {
			if c.IsValid(i) {
				counts[c.CellString(i)]++
			}
		}
		for v, n := range counts {
			if n > cs.Freq || (n == cs.Freq && n > 0 && v < cs.Top) {
				cs.Top, cs.Freq = v, n
			}
		}
		out = append(out, cs)
	}
	return out
}
