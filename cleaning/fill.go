package cleaning

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// FillStrategy selects how FillMissing replaces null cells.
type FillStrategy int

const (
	// FillMean replaces nulls in numeric columns with the column mean.
	FillMean FillStrategy = iota
	// FillMedian replaces nulls in numeric columns with the column median.
	FillMedian
	// FillMode replaces nulls in any column with its most frequent value.
	FillMode
	// FillConstant replaces nulls with a fixed value parsed per column dtype.
	FillConstant
)

func (s FillStrategy) String() string {
	switch s {
	case FillMean:
		return "mean"
	case FillMedian:
		return "median"
	case FillMode:
		return "mode"
	case FillConstant:
		return "constant"
	default:
		return fmt.Sprintf("FillStrategy(%d)", int(s))
	}
}

// ParseFillStrategy maps the textual strategy names used on the command line.
func ParseFillStrategy(s string) (FillStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mean":
		return FillMean, nil
	case "median":
		return FillMedian, nil
	case "mode":
		return FillMode, nil
	case "constant":
		return FillConstant, nil
	}
	return 0, errors.NewValueError("cleaning.ParseFillStrategy", fmt.Sprintf("unknown strategy '%s'", s))
}

type fillOptions struct {
	columns  []string
	constant string
}

// FillOption adjusts FillMissing.
type FillOption func(*fillOptions)

// WithColumns limits filling to the named columns.
func WithColumns(cols ...string) FillOption {
	return func(o *fillOptions) { o.columns = append(o.columns, cols...) }
}

// WithConstant sets the replacement value for FillConstant. The value is
// parsed under each column's dtype before filling.
func WithConstant(v string) FillOption {
	return func(o *fillOptions) { o.constant = v }
}

// FillMissing replaces null cells per the strategy. Columns the strategy has
// no value for are left unchanged: mean and median skip non-numeric columns,
// every strategy skips all-null columns, and a constant that does not parse
// under a column's dtype skips that column.
func FillMissing(f *frame.Frame, strategy FillStrategy, opts ...FillOption) (*frame.Frame, error) {
	switch strategy {
	case FillMean, FillMedian, FillMode, FillConstant:
	default:
		return nil, errors.NewValueError("cleaning.FillMissing", fmt.Sprintf("unknown strategy %d", int(strategy)))
	}
	o := &fillOptions{}
	for _, opt := range opts {
		opt(o)
	}
	targets := o.columns
	if len(targets) == 0 {
		targets = f.Columns()
	}

	out := f.Copy()
	for _, name := range targets {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		if c.NullCount() == 0 {
			continue
		}
		filled := fillColumn(c, strategy, o.constant)
		if filled == nil {
			continue
		}
		out, err = out.WithColumn(filled)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fillColumn returns a copy of c with nulls replaced, or nil when the
// strategy cannot produce a value for this column.
func fillColumn(c *frame.Column, strategy FillStrategy, constant string) *frame.Column {
	switch strategy {
	case FillMean, FillMedian:
		if c.DType() != frame.DTypeNumeric {
			return nil
		}
		xs := c.ValidFloats()
		if len(xs) == 0 {
			return nil
		}
		if strategy == FillMean {
			return fillNumeric(c, stat.Mean(xs, nil))
		}
		sort.Float64s(xs)
		return fillNumeric(c, quantile(xs, 0.5))
	case FillMode:
		return fillWithMode(c)
	case FillConstant:
		return fillWithConstant(c, constant)
	}
	return nil
}

func fillWithMode(c *frame.Column) *frame.Column {
	switch c.DType() {
	case frame.DTypeNumeric:
		if v, ok := modeFloat(c); ok {
			return fillNumeric(c, v)
		}
	case frame.DTypeCategorical:
		if v, ok := modeString(c); ok {
			return fillCategorical(c, v)
		}
	case frame.DTypeDatetime:
		if v, ok := modeTime(c); ok {
			return fillDatetime(c, v)
		}
	case frame.DTypeBoolean:
		if v, ok := modeBool(c); ok {
			return fillBoolean(c, v)
		}
	}
	return nil
}

func fillWithConstant(c *frame.Column, constant string) *frame.Column {
	switch c.DType() {
	case frame.DTypeNumeric:
		v, err := strconv.ParseFloat(strings.TrimSpace(constant), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return fillNumeric(c, v)
	case frame.DTypeCategorical:
		return fillCategorical(c, constant)
	case frame.DTypeDatetime:
		if t, ok := frame.ParseTime(strings.TrimSpace(constant)); ok {
			return fillDatetime(c, t)
		}
	case frame.DTypeBoolean:
		if b, ok := frame.ParseBool(constant); ok {
			return fillBoolean(c, b)
		}
	}
	return nil
}

func fillNumeric(c *frame.Column, v float64) *frame.Column {
	vals := make([]float64, c.Len())
	copy(vals, c.Floats())
	for i := range vals {
		if !c.IsValid(i) {
			vals[i] = v
		}
	}
	return frame.NewNumericColumn(c.Name(), vals, nil)
}

func fillCategorical(c *frame.Column, v string) *frame.Column {
	vals := make([]string, c.Len())
	copy(vals, c.Strs())
	for i := range vals {
		if !c.IsValid(i) {
			vals[i] = v
		}
	}
	return frame.NewCategoricalColumn(c.Name(), vals, nil)
}

func fillDatetime(c *frame.Column, v time.Time) *frame.Column {
	vals := make([]time.Time, c.Len())
	copy(vals, c.Times())
	for i := range vals {
		if !c.IsValid(i) {
			vals[i] = v
		}
	}
	return frame.NewDatetimeColumn(c.Name(), vals, nil)
}

func fillBoolean(c *frame.Column, v bool) *frame.Column {
	vals := make([]bool, c.Len())
	copy(vals, c.Bools())
	for i := range vals {
		if !c.IsValid(i) {
			vals[i] = v
		}
	}
	return frame.NewBooleanColumn(c.Name(), vals, nil)
}

// modeFloat returns the most frequent non-null value, smallest value on a
// tie. ok is false for an all-null column.
func modeFloat(c *frame.Column) (float64, bool) {
	counts := make(map[float64]int)
	for i, v := range c.Floats() {
		if c.IsValid(i) {
			counts[v]++
		}
	}
	var best float64
	bestN := 0
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, bestN > 0
}

func modeString(c *frame.Column) (string, bool) {
	counts := make(map[string]int)
	for i, v := range c.Strs() {
		if c.IsValid(i) {
			counts[v]++
		}
	}
	var best string
	bestN := 0
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, bestN > 0
}

func modeTime(c *frame.Column) (time.Time, bool) {
	counts := make(map[int64]int)
	for i, t := range c.Times() {
		if c.IsValid(i) {
			counts[t.UnixNano()]++
		}
	}
	var best int64
	bestN := 0
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	if bestN == 0 {
		return time.Time{}, false
	}
	return time.Unix(0, best).UTC(), true
}

func modeBool(c *frame.Column) (bool, bool) {
	var nTrue, nFalse int
	for i, b := range c.Bools() {
		if !c.IsValid(i) {
			continue
		}
		if b {
			nTrue++
		} else {
			nFalse++
		}
	}
	if nTrue+nFalse == 0 {
		return false, false
	}
	return nTrue > nFalse, true
}
