package frame

import (
	"math"
	"strconv"
	"time"
)

// DType identifies the element type of a column.
type DType int

const (
	// DTypeNumeric is a float64-backed column.
	DTypeNumeric DType = iota
	// DTypeCategorical is a string-backed column.
	DTypeCategorical
	// DTypeDatetime is a time.Time-backed column.
	DTypeDatetime
	// DTypeBoolean is a bool-backed column.
	DTypeBoolean
)

// String returns the lowercase name of the dtype.
func (t DType) String() string {
	switch t {
	case DTypeNumeric:
		return "numeric"
	case DTypeCategorical:
		return "categorical"
	case DTypeDatetime:
		return "datetime"
	case DTypeBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Column is a typed, named column with a validity mask. Exactly one of the
// backing slices is populated, matching the dtype. A cell whose mask entry is
// false is null; its backing value is the dtype's missing marker (NaN for
// numeric, the zero value otherwise).
type Column struct {
	name  string
	dtype DType

	nums  []float64
	cats  []string
	times []time.Time
	bools []bool

	valid []bool
}

func normalizeMask(n int, valid []bool) []bool {
	mask := make([]bool, n)
	if valid == nil {
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	copy(mask, valid)
	return mask
}

// NewNumericColumn builds a numeric column. A nil mask marks every cell
// valid. NaN values are always recorded as null regardless of the mask.
func NewNumericColumn(name string, values []float64, valid []bool) *Column {
	mask := normalizeMask(len(values), valid)
	nums := make([]float64, len(values))
	copy(nums, values)
	for i, v := range nums {
		if math.IsNaN(v) {
			mask[i] = false
		}
		if !mask[i] {
			nums[i] = math.NaN()
		}
	}
	return &Column{name: name, dtype: DTypeNumeric, nums: nums, valid: mask}
}

// NewCategoricalColumn builds a string column. A nil mask marks every cell valid.
func NewCategoricalColumn(name string, values []string, valid []bool) *Column {
	mask := normalizeMask(len(values), valid)
	cats := make([]string, len(values))
	copy(cats, values)
	for i := range cats {
		if !mask[i] {
			cats[i] = ""
		}
	}
	return &Column{name: name, dtype: DTypeCategorical, cats: cats, valid: mask}
}

// NewDatetimeColumn builds a datetime column. A nil mask marks every cell valid.
func NewDatetimeColumn(name string, values []time.Time, valid []bool) *Column {
	mask := normalizeMask(len(values), valid)
	times := make([]time.Time, len(values))
	copy(times, values)
	for i := range times {
		if !mask[i] {
			times[i] = time.Time{}
		}
	}
	return &Column{name: name, dtype: DTypeDatetime, times: times, valid: mask}
}

// NewBooleanColumn builds a boolean column. A nil mask marks every cell valid.
func NewBooleanColumn(name string, values []bool, valid []bool) *Column {
	mask := normalizeMask(len(values), valid)
	bools := make([]bool, len(values))
	copy(bools, values)
	for i := range bools {
		if !mask[i] {
			bools[i] = false
		}
	}
	return &Column{name: name, dtype: DTypeBoolean, bools: bools, valid: mask}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// DType returns the column's element type.
func (c *Column) DType() DType { return c.dtype }

// Len returns the number of cells, null or not.
func (c *Column) Len() int { return len(c.valid) }

// IsValid reports whether the cell at i holds a value.
func (c *Column) IsValid(i int) bool { return c.valid[i] }

// NullCount returns the number of null cells.
func (c *Column) NullCount() int {
	n := 0
	for _, ok := range c.valid {
		if !ok {
			n++
		}
	}
	return n
}

// Float returns the numeric value at i. Null cells and non-numeric columns
// yield NaN.
func (c *Column) Float(i int) float64 {
	if c.dtype != DTypeNumeric || !c.valid[i] {
		return math.NaN()
	}
	return c.nums[i]
}

// Str returns the string value at i. Null cells and non-categorical columns
// yield "".
func (c *Column) Str(i int) string {
	if c.dtype != DTypeCategorical || !c.valid[i] {
		return ""
	}
	return c.cats[i]
}

// Time returns the datetime value at i. Null cells and non-datetime columns
// yield the zero time.
func (c *Column) Time(i int) time.Time {
	if c.dtype != DTypeDatetime || !c.valid[i] {
		return time.Time{}
	}
	return c.times[i]
}

// Bool returns the boolean value at i. Null cells and non-boolean columns
// yield false.
func (c *Column) Bool(i int) bool {
	if c.dtype != DTypeBoolean || !c.valid[i] {
		return false
	}
	return c.bools[i]
}

// Floats returns the backing numeric slice. The slice is shared with the
// column; treat it as read-only. Nil for non-numeric columns.
func (c *Column) Floats() []float64 { return c.nums }

// Strs returns the backing string slice. Read-only; nil for non-categorical
// columns.
func (c *Column) Strs() []string { return c.cats }

// Times returns the backing time slice. Read-only; nil for non-datetime
// columns.
func (c *Column) Times() []time.Time { return c.times }

// Bools returns the backing bool slice. Read-only; nil for non-boolean
// columns.
func (c *Column) Bools() []bool { return c.bools }

// ValidMask returns the validity mask. Read-only.
func (c *Column) ValidMask() []bool { return c.valid }

// ValidFloats returns a new slice holding only the non-null numeric values,
// in row order. Empty for non-numeric columns.
func (c *Column) ValidFloats() []float64 {
	if c.dtype != DTypeNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for i, v := range c.nums {
		if c.valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// CellString renders the cell at i as text, the way a user would type it when
// searching. Null cells render as "". Numeric values use the shortest exact
// decimal form, booleans render as "true"/"false", and datetimes render as
// "2006-01-02" when the time of day is midnight and "2006-01-02 15:04:05"
// otherwise.
func (c *Column) CellString(i int) string {
	if !c.valid[i] {
		return ""
	}
	switch c.dtype {
	case DTypeNumeric:
		return strconv.FormatFloat(c.nums[i], 'f', -1, 64)
	case DTypeCategorical:
		return c.cats[i]
	case DTypeDatetime:
		t := c.times[i]
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case DTypeBoolean:
		return strconv.FormatBool(c.bools[i])
	default:
		return ""
	}
}

// Uniques returns the distinct non-null values in first-appearance order,
// rendered with CellString.
func (c *Column) Uniques() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := 0; i < c.Len(); i++ {
		if !c.valid[i] {
			continue
		}
		s := c.CellString(i)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// NUnique returns the number of distinct non-null values.
func (c *Column) NUnique() int {
	seen := make(map[string]struct{})
	for i := 0; i < c.Len(); i++ {
		if !c.valid[i] {
			continue
		}
		seen[c.CellString(i)] = struct{}{}
	}
	return len(seen)
}

// WithName returns a copy of the column under a new name.
func (c *Column) WithName(name string) *Column {
	cp := c.copyColumn()
	cp.name = name
	return cp
}

// take builds a new column holding the cells at rows, in order.
func (c *Column) take(rows []int) *Column {
	out := &Column{name: c.name, dtype: c.dtype, valid: make([]bool, len(rows))}
	switch c.dtype {
	case DTypeNumeric:
		out.nums = make([]float64, len(rows))
		for k, i := range rows {
			out.nums[k] = c.nums[i]
			out.valid[k] = c.valid[i]
		}
	case DTypeCategorical:
		out.cats = make([]string, len(rows))
		for k, i := range rows {
			out.cats[k] = c.cats[i]
			out.valid[k] = c.valid[i]
		}
	case DTypeDatetime:
		out.times = make([]time.Time, len(rows))
		for k, i := range rows {
			out.times[k] = c.times[i]
			out.valid[k] = c.valid[i]
		}
	case DTypeBoolean:
		out.bools = make([]bool, len(rows))
		for k, i := range rows {
			out.bools[k] = c.bools[i]
			out.valid[k] = c.valid[i]
		}
	}
	return out
}

func (c *Column) copyColumn() *Column {
	out := &Column{name: c.name, dtype: c.dtype, valid: make([]bool, len(c.valid))}
	copy(out.valid, c.valid)
	switch c.dtype {
	case DTypeNumeric:
		out.nums = make([]float64, len(c.nums))
		copy(out.nums, c.nums)
	case DTypeCategorical:
		out.cats = make([]string, len(c.cats))
		copy(out.cats, c.cats)
	case DTypeDatetime:
		out.times = make([]time.Time, len(c.times))
		copy(out.times, c.times)
	case DTypeBoolean:
		out.bools = make([]bool, len(c.bools))
		copy(out.bools, c.bools)
	}
	return out
}

// Equal reports value equality with other: same name, dtype, length,
// validity, and cell values. Null cells compare equal regardless of their
// backing value, and NaN compares equal to NaN.
func (c *Column) Equal(other *Column) bool {
	if other == nil || c.name != other.name || c.dtype != other.dtype || c.Len() != other.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.valid[i] != other.valid[i] {
			return false
		}
		if !c.valid[i] {
			continue
		}
		switch c.dtype {
		case DTypeNumeric:
			a, b := c.nums[i], other.nums[i]
			if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
				return false
			}
		case DTypeCategorical:
			if c.cats[i] != other.cats[i] {
				return false
			}
		case DTypeDatetime:
			if !c.times[i].Equal(other.times[i]) {
				return false
			}
		case DTypeBoolean:
			if c.bools[i] != other.bools[i] {
				return false
			}
		}
	}
	return true
}
