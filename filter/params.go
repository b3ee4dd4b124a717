package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// Search holds a free-text query. An empty Query is inactive. Columns limits
// the search to the named columns; empty means every column.
type Search struct {
	Query   string
	Columns []string
}

// DateRange is an inclusive [Start, End] window. A zero Start or End leaves
// that side open; both zero is inactive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NumericRange is an inclusive [Min, Max] interval.
type NumericRange struct {
	Min float64
	Max float64
}

// BoolChoice is the three-state boolean selector.
type BoolChoice int

const (
	// BoolAny applies no filter.
	BoolAny BoolChoice = iota
	// BoolTrue keeps only true cells.
	BoolTrue
	// BoolFalse keeps only false cells.
	BoolFalse
)

// String returns the selector label.
func (b BoolChoice) String() string {
	switch b {
	case BoolAny:
		return "all"
	case BoolTrue:
		return "true"
	case BoolFalse:
		return "false"
	default:
		return "invalid"
	}
}

// Params is the typed filter configuration. It replaces a loose bag of
// per-widget state with one validated object: each map is keyed by column
// name, and an entry's presence (with an active value) makes that filter
// part of the run.
type Params struct {
	// SQL is an optional SELECT statement run against the frame as table
	// "df" before any other filter.
	SQL string

	// Search is the free-text filter, applied after SQL.
	Search Search

	// Dates holds per-column inclusive date windows.
	Dates map[string]DateRange

	// Numerics holds per-column inclusive numeric intervals.
	Numerics map[string]NumericRange

	// Categories holds per-column membership sets. An empty set is inactive.
	Categories map[string][]string

	// Booleans holds per-column three-state selections.
	Booleans map[string]BoolChoice
}

// NewParams returns an empty, inactive parameter set.
func NewParams() *Params {
	return &Params{
		Dates:      make(map[string]DateRange),
		Numerics:   make(map[string]NumericRange),
		Categories: make(map[string][]string),
		Booleans:   make(map[string]BoolChoice),
	}
}

// Active returns the number of filters this parameter set would run.
func (p *Params) Active() int {
	n := 0
	if strings.TrimSpace(p.SQL) != "" {
		n++
	}
	if p.Search.Query != "" {
		n++
	}
	for _, r := range p.Dates {
		if !r.Start.IsZero() || !r.End.IsZero() {
			n++
		}
	}
	n += len(p.Numerics)
	for _, vals := range p.Categories {
		if len(vals) > 0 {
			n++
		}
	}
	for _, c := range p.Booleans {
		if c != BoolAny {
			n++
		}
	}
	return n
}

// Validate checks every entry for structural problems: empty column keys,
// non-finite or inverted numeric bounds, inverted date windows, out-of-range
// boolean choices, and non-SELECT SQL. It does not touch any frame; column
// existence and dtype checks happen at apply time.
func (p *Params) Validate() error {
	if q := strings.TrimSpace(p.SQL); q != "" {
		if !strings.HasPrefix(strings.ToLower(q), "select") {
			return errors.NewValidationError("SQL", "only SELECT statements are permitted", p.SQL)
		}
	}
	for _, col := range p.Search.Columns {
		if strings.TrimSpace(col) == "" {
			return errors.NewValidationError("Search.Columns", "empty column name", col)
		}
	}
	for col, r := range p.Dates {
		if strings.TrimSpace(col) == "" {
			return errors.NewValidationError("Dates", "empty column name", col)
		}
		if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
			return errors.NewValidationError("Dates",
				fmt.Sprintf("column '%s': end %s is before start %s", col, r.End.Format("2006-01-02"), r.Start.Format("2006-01-02")), r)
		}
	}
	for col, r := range p.Numerics {
		if strings.TrimSpace(col) == "" {
			return errors.NewValidationError("Numerics", "empty column name", col)
		}
		if err := errors.CheckScalar("Params.Validate", r.Min); err != nil {
			return errors.NewValidationError("Numerics", fmt.Sprintf("column '%s': non-finite min", col), r.Min)
		}
		if err := errors.CheckScalar("Params.Validate", r.Max); err != nil {
			return errors.NewValidationError("Numerics", fmt.Sprintf("column '%s': non-finite max", col), r.Max)
		}
		if r.Min > r.Max {
			return errors.NewValidationError("Numerics",
				fmt.Sprintf("column '%s': min %v is greater than max %v", col, r.Min, r.Max), r)
		}
	}
	for col := range p.Categories {
		if strings.TrimSpace(col) == "" {
			return errors.NewValidationError("Categories", "empty column name", col)
		}
	}
	for col, c := range p.Booleans {
		if strings.TrimSpace(col) == "" {
			return errors.NewValidationError("Booleans", "empty column name", col)
		}
		if c != BoolAny && c != BoolTrue && c != BoolFalse {
			return errors.NewValidationError("Booleans",
				fmt.Sprintf("column '%s': invalid choice %d", col, int(c)), c)
		}
	}
	return nil
}

// Clone returns a deep copy. Mutating the clone never affects the source.
func (p *Params) Clone() *Params {
	q := NewParams()
	q.SQL = p.SQL
	q.Search.Query = p.Search.Query
	q.Search.Columns = append([]string(nil), p.Search.Columns...)
	for col, r := range p.Dates {
		q.Dates[col] = r
	}
	for col, r := range p.Numerics {
		q.Numerics[col] = r
	}
	for col, vals := range p.Categories {
		q.Categories[col] = append([]string(nil), vals...)
	}
	for col, c := range p.Booleans {
		q.Booleans[col] = c
	}
	return q
}

// Filters expands the parameter set into the fixed application order: SQL,
// then text search, then date, numeric, categorical, and boolean filters.
// Within a type, columns run in lexical order so repeated runs over the same
// parameters visit filters identically.
func (p *Params) Filters() []Filter {
	var out []Filter
	if strings.TrimSpace(p.SQL) != "" {
		out = append(out, &SQLFilter{Query: p.SQL})
	}
	if p.Search.Query != "" {
		out = append(out, &SearchFilter{Query: p.Search.Query, Columns: p.Search.Columns})
	}
	for _, col := range sortedKeys(p.Dates) {
		r := p.Dates[col]
		if r.Start.IsZero() && r.End.IsZero() {
			continue
		}
		out = append(out, &DateRangeFilter{Column: col, Start: r.Start, End: r.End})
	}
	for _, col := range sortedKeys(p.Numerics) {
		r := p.Numerics[col]
		out = append(out, &NumericRangeFilter{Column: col, Min: r.Min, Max: r.Max})
	}
	for _, col := range sortedKeys(p.Categories) {
		vals := p.Categories[col]
		if len(vals) == 0 {
			continue
		}
		out = append(out, &CategoricalFilter{Column: col, Selected: vals})
	}
	for _, col := range sortedKeys(p.Booleans) {
		c := p.Booleans[col]
		if c == BoolAny {
			continue
		}
		out = append(out, &BooleanFilter{Column: col, Choice: c})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
