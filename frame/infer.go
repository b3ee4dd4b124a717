package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// nullLiterals are the lowercase tokens treated as missing values when
// parsing raw text data.
var nullLiterals = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// IsNull reports whether a raw text token represents a missing value.
func IsNull(s string) bool {
	_, ok := nullLiterals[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// dateLayouts are tried in order when parsing datetime cells. Day-first
// layouts are deliberately absent; ambiguous dates parse month-first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseTime parses a datetime cell against the supported layouts.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddDateLayouts appends Go time layouts for ParseTime to try after the
// built-in ones. Register layouts before loading data; the list is not
// safe for concurrent mutation.
func AddDateLayouts(layouts ...string) {
	for _, layout := range layouts {
		if layout == "" {
			continue
		}
		seen := false
		for _, have := range dateLayouts {
			if have == layout {
				seen = true
				break
			}
		}
		if !seen {
			dateLayouts = append(dateLayouts, layout)
		}
	}
}

// ParseBool parses a boolean cell. Only "true" and "false" are accepted,
// case-insensitively, so numeric 0/1 columns stay numeric.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// InferColumn builds a typed column from raw text cells. Candidate dtypes are
// tried in priority order datetime, boolean, numeric; a dtype is chosen only
// when every non-null cell parses as it. Columns that match nothing, and
// columns with no non-null cells at all, become categorical.
func InferColumn(name string, raw []string) *Column {
	n := len(raw)
	valid := make([]bool, n)
	cells := make([]string, n)
	nonNull := 0
	for i, s := range raw {
		s = strings.TrimSpace(s)
		cells[i] = s
		if !IsNull(s) {
			valid[i] = true
			nonNull++
		}
	}
	if nonNull == 0 {
		return NewCategoricalColumn(name, make([]string, n), valid)
	}

	times := make([]time.Time, n)
	isTime := true
	for i, s := range cells {
		if !valid[i] {
			continue
		}
		t, ok := ParseTime(s)
		if !ok {
			isTime = false
			break
		}
		times[i] = t
	}
	if isTime {
		return NewDatetimeColumn(name, times, valid)
	}

	bools := make([]bool, n)
	isBool := true
	for i, s := range cells {
		if !valid[i] {
			continue
		}
		b, ok := ParseBool(s)
		if !ok {
			isBool = false
			break
		}
		bools[i] = b
	}
	if isBool {
		return NewBooleanColumn(name, bools, valid)
	}

	nums := make([]float64, n)
	isNum := true
	for i, s := range cells {
		if !valid[i] {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			isNum = false
			break
		}
		nums[i] = v
	}
	if isNum {
		return NewNumericColumn(name, nums, valid)
	}

	return NewCategoricalColumn(name, cells, valid)
}

// UniquifyHeader deduplicates column names by suffixing repeats with ".1",
// ".2", and so on. Blank names become "column", "column.1", ...
func UniquifyHeader(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "column"
		}
		if k, dup := seen[name]; dup {
			cand := fmt.Sprintf("%s.%d", name, k)
			for {
				if _, taken := seen[cand]; !taken {
					break
				}
				k++
				cand = fmt.Sprintf("%s.%d", name, k)
			}
			seen[name] = k + 1
			name = cand
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}

// InferFrame builds a frame from a header row and row-major records, such as
// the output of a CSV reader. Short records are padded with nulls, and
// duplicate header names are deduplicated.
func InferFrame(header []string, rows [][]string) (*Frame, error) {
	names := UniquifyHeader(header)
	cols := make([]*Column, 0, len(names))
	for j, name := range names {
		raw := make([]string, len(rows))
		for i, rec := range rows {
			if j < len(rec) {
				raw[i] = rec[j]
			}
		}
		cols = append(cols, InferColumn(name, raw))
	}
	return New(cols...)
}

// CastColumn converts a column to the target dtype by re-parsing each cell's
// text form. Cells that fail to parse become null rather than failing the
// whole cast.
func CastColumn(c *Column, target DType) (*Column, error) {
	if c.DType() == target {
		return c.copyColumn(), nil
	}
	n := c.Len()
	switch target {
	case DTypeCategorical:
		cells := make([]string, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			cells[i] = c.CellString(i)
			valid[i] = true
		}
		return NewCategoricalColumn(c.Name(), cells, valid), nil
	case DTypeNumeric:
		nums := make([]float64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			if v, err := strconv.ParseFloat(c.CellString(i), 64); err == nil {
				nums[i] = v
				valid[i] = true
			}
		}
		return NewNumericColumn(c.Name(), nums, valid), nil
	case DTypeDatetime:
		times := make([]time.Time, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			if t, ok := ParseTime(c.CellString(i)); ok {
				times[i] = t
				valid[i] = true
			}
		}
		return NewDatetimeColumn(c.Name(), times, valid), nil
	case DTypeBoolean:
		bools := make([]bool, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			if b, ok := ParseBool(c.CellString(i)); ok {
				bools[i] = b
				valid[i] = true
			}
		}
		return NewBooleanColumn(c.Name(), bools, valid), nil
	default:
		return nil, errors.NewValueError("frame.CastColumn", fmt.Sprintf("unsupported target dtype %d", int(target)))
	}
}
