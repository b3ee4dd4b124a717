// Package filter implements the global filtering subsystem: column-type
// detection, composable row predicates (SQL, text search, date range, numeric
// range, categorical membership, boolean match), their sequential composition
// with fail-open error handling, and the row-count summary.
//
// Filters are pure. Apply never modifies its input frame: it returns the
// input itself when the filter is inactive, and a new frame otherwise. Null
// cells never match a predicate; they are dropped by any active filter on
// their column.
package filter

import (
	"github.com/YuminosukeSato/siftgo/frame"
)

// Filter is a single row predicate over a frame.
type Filter interface {
	// Name identifies the filter kind in warnings and logs.
	Name() string

	// Apply returns the rows of f matching the predicate, preserving row
	// order. The input frame is never modified.
	Apply(f *frame.Frame) (*frame.Frame, error)
}

// filterColumn reports the column a filter targets, or "" for filters that
// span the whole frame.
func filterColumn(flt Filter) string {
	switch v := flt.(type) {
	case *DateRangeFilter:
		return v.Column
	case *NumericRangeFilter:
		return v.Column
	case *CategoricalFilter:
		return v.Column
	case *BooleanFilter:
		return v.Column
	default:
		return ""
	}
}
