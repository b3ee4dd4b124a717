package filter

import (
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
	"github.com/YuminosukeSato/siftgo/pkg/log"
)

// Result is the outcome of one filter pass.
type Result struct {
	// Frame holds the surviving rows.
	Frame *frame.Frame

	// Total is the row count before filtering.
	Total int

	// Warnings lists, in application order, the filters that failed and were
	// skipped.
	Warnings []string
}

// Summary returns the row-count summary for this pass.
func (r *Result) Summary() Summary {
	return Summary{Filtered: r.Frame.NumRows(), Total: r.Total}
}

// Chain applies filters sequentially in a fixed order with AND semantics:
// each filter runs over the survivors of the previous one, with no early
// exit and no reordering. A filter that returns an error or panics is
// skipped; the pass continues from the frame that filter received, the
// failure is surfaced as a warning, and Run never fails as a whole.
type Chain struct {
	filters []Filter
	logger  log.Logger
}

// NewChain builds a chain that applies the given filters in order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{
		filters: filters,
		logger:  log.GetLoggerWithName("filter"),
	}
}

// FromParams expands a parameter set into its canonical order: SQL, search,
// date, numeric, categorical, boolean.
func FromParams(p *Params) *Chain {
	return NewChain(p.Filters()...)
}

// WithLogger replaces the chain's logger and returns the chain, so a session
// can route pass logs through its own bound logger.
func (c *Chain) WithLogger(l log.Logger) *Chain {
	c.logger = l
	return c
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// Run executes the pass over f. The input frame is never modified: the pass
// works on a copy, so the cleaned frame survives even a misbehaving filter.
func (c *Chain) Run(f *frame.Frame) *Result {
	res := &Result{Frame: f.Copy(), Total: f.NumRows()}

	for _, flt := range c.filters {
		rowsIn := res.Frame.NumRows()
		out, err := applyStep(flt, res.Frame)
		if err != nil {
			w := errors.NewFilterFallbackWarning(flt.Name(), filterColumn(flt), err.Error())
			res.Warnings = append(res.Warnings, w.Error())
			errors.Warn(w)
			c.logger.Warn("filter skipped",
				log.FilterKey, flt.Name(),
				log.FilterColumnKey, filterColumn(flt),
				log.ErrAttr(err))
			continue
		}
		c.logger.Debug("filter applied",
			log.FilterKey, flt.Name(),
			log.FilterColumnKey, filterColumn(flt),
			log.RowsInKey, rowsIn,
			log.RowsOutKey, out.NumRows())
		res.Frame = out
	}

	c.logger.Info("filter pass completed",
		log.RowsInKey, res.Total,
		log.RowsOutKey, res.Frame.NumRows(),
		log.RetainedPctKey, errors.SafeDivide(float64(res.Frame.NumRows()), float64(res.Total))*100,
		log.WarningsKey, len(res.Warnings))
	return res
}

// applyStep runs one filter, converting panics into errors.
func applyStep(flt Filter, f *frame.Frame) (out *frame.Frame, err error) {
	defer errors.Recover(&err, "filter."+flt.Name())
	return flt.Apply(f)
}
