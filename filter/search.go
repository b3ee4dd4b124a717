package filter

import (
	"strings"

	"github.com/YuminosukeSato/siftgo/frame"
)

// SearchFilter keeps rows where any searched cell contains the query as a
// case-insensitive substring of its text form. Columns of every dtype take
// part: numbers, dates, and booleans are matched against their rendered
// text. An empty query keeps everything.
type SearchFilter struct {
	Query string

	// Columns limits the search. Empty means all columns.
	Columns []string
}

// Name implements Filter.
func (s *SearchFilter) Name() string { return "search" }

// Apply implements Filter. A row is kept when at least one searched column
// matches; null cells never match.
func (s *SearchFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if s.Query == "" {
		return f, nil
	}

	cols := make([]*frame.Column, 0, f.NumCols())
	if len(s.Columns) == 0 {
		for i := 0; i < f.NumCols(); i++ {
			cols = append(cols, f.ColumnAt(i))
		}
	} else {
		for _, name := range s.Columns {
			c, err := f.Column(name)
			if err != nil {
				return nil, err
			}
			cols = append(cols, c)
		}
	}

	query := strings.ToLower(s.Query)
	keep := make([]bool, f.NumRows())
	for i := range keep {
		for _, c := range cols {
			if !c.IsValid(i) {
				continue
			}
			if strings.Contains(strings.ToLower(c.CellString(i)), query) {
				keep[i] = true
				break
			}
		}
	}
	return f.SelectMask(keep), nil
}
