package explore

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/siftgo/core/parallel"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// CorrMatrix is a Pearson correlation matrix; Matrix.At(i, j) holds the
// coefficient for Columns[i] and Columns[j].
type CorrMatrix struct {
	Columns []string
	Matrix  *mat.SymDense
}

// Correlation computes pairwise Pearson correlation over numeric columns.
// With no explicit columns every numeric column participates; named columns
// must exist and be numeric. Each pair is computed over the rows where both
// cells are non-null, and an entry is NaN when fewer than two such rows
// remain or a column is constant on them.
func Correlation(f *frame.Frame, cols ...string) (*CorrMatrix, error) {
	var names []string
	var columns []*frame.Column
	if len(cols) == 0 {
		for j := 0; j < f.NumCols(); j++ {
			if c := f.ColumnAt(j); c.DType() == frame.DTypeNumeric {
				names = append(names, c.Name())
				columns = append(columns, c)
			}
		}
	} else {
		for _, name := range cols {
			c, err := f.Column(name)
			if err != nil {
				return nil, err
			}
			if c.DType() != frame.DTypeNumeric {
				return nil, errors.NewTypeMismatchError("explore.Correlation", name,
					frame.DTypeNumeric.String(), c.DType().String())
			}
			names = append(names, name)
			columns = append(columns, c)
		}
	}
	if len(names) == 0 {
		return nil, errors.NewValueError("explore.Correlation", "no numeric columns")
	}

	k := len(names)
	type pair struct{ i, j int }
	pairs := make([]pair, 0, k*(k+1)/2)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	m := mat.NewSymDense(k, nil)
	work := func(start, end int) {
		for p := start; p < end; p++ {
			i, j := pairs[p].i, pairs[p].j
			m.SetSym(i, j, pairwiseCorrelation(columns[i], columns[j]))
		}
	}
	if f.NumRows() >= parallelRowThreshold {
		parallel.Parallelize(len(pairs), work)
	} else {
		work(0, len(pairs))
	}
	return &CorrMatrix{Columns: names, Matrix: m}, nil
}

// pairwiseCorrelation restricts both columns to their complete rows before
// handing them to gonum.
func pairwiseCorrelation(a, b *frame.Column) float64 {
	va, vb := a.Floats(), b.Floats()
	xs := make([]float64, 0, len(va))
	ys := make([]float64, 0, len(vb))
	for i := range va {
		if a.IsValid(i) && b.IsValid(i) {
			xs = append(xs, va[i])
			ys = append(ys, vb[i])
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
