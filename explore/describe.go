package explore

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/siftgo/core/parallel"
	"github.com/YuminosukeSato/siftgo/frame"
)

// NumericSummary profiles one numeric column. Count is the number of
// non-null cells; the remaining fields are computed over those cells only
// and are NaN when too few values exist (Std needs two, Skew three,
// Kurtosis four).
type NumericSummary struct {
	Column   string
	Count    int
	Mean     float64
	Std      float64
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Skew     float64
	Kurtosis float64
}

// Describe profiles every numeric column of f, in frame column order.
func Describe(f *frame.Frame) []NumericSummary {
	var cols []*frame.Column
	for j := 0; j < f.NumCols(); j++ {
		if c := f.ColumnAt(j); c.DType() == frame.DTypeNumeric {
			cols = append(cols, c)
		}
	}

	out := make([]NumericSummary, len(cols))
	work := func(start, end int) {
		for k := start; k < end; k++ {
			out[k] = describeColumn(cols[k])
		}
	}
	if f.NumRows() >= parallelRowThreshold {
		parallel.Parallelize(len(cols), work)
	} else {
		work(0, len(cols))
	}
	return out
}

func describeColumn(c *frame.Column) NumericSummary {
	xs := c.ValidFloats()
	s := NumericSummary{Column: c.Name(), Count: len(xs)}
	if len(xs) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		s.Skew, s.Kurtosis = nan, nan
		return s
	}

	sort.Float64s(xs)
	s.Min = xs[0]
	s.Max = xs[len(xs)-1]
	s.Q25 = quantile(xs, 0.25)
	s.Median = quantile(xs, 0.5)
	s.Q75 = quantile(xs, 0.75)
	s.Mean, s.Std = stat.MeanStdDev(xs, nil)
	s.Skew = skewness(xs, s.Mean, s.Std)
	s.Kurtosis = kurtosis(xs, s.Mean, s.Std)
	return s
}

// quantile returns the p-quantile of sorted xs, interpolating linearly
// between closest ranks.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-math.Floor(h))*(sorted[i+1]-sorted[i])
}

// skewness is the bias-corrected sample skewness,
// n/((n-1)(n-2)) * sum(z^3) with z standardized by the sample std.
func skewness(xs []float64, mean, std float64) float64 {
	n := float64(len(xs))
	if len(xs) < 3 || std == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range xs {
		z := (v - mean) / std
		sum += z * z * z
	}
	return sum * n / ((n - 1) * (n - 2))
}

// kurtosis is the bias-corrected excess kurtosis,
// n(n+1)/((n-1)(n-2)(n-3)) * sum(z^4) - 3(n-1)^2/((n-2)(n-3)).
func kurtosis(xs []float64, mean, std float64) float64 {
	n := float64(len(xs))
	if len(xs) < 4 || std == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range xs {
		z := (v - mean) / std
		sum += z * z * z * z
	}
	return sum*n*(n+1)/((n-1)*(n-2)*(n-3)) - 3*(n-1)*(n-1)/((n-2)*(n-3))
}
