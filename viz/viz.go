// Package viz renders frames to chart image files with gonum/plot.
//
// Each renderer takes a frame, the columns to draw, and a destination
// path, and returns the path it saved to. The output format follows the
// file extension (.png, .svg, .pdf, ...). When a session store is
// attached with WithStore, the saved path is also added to the store's
// chart registry.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
	"github.com/YuminosukeSato/siftgo/session"
)

// defaultBins is the histogram bin count when WithBins is not given.
const defaultBins = 30

// chartPalette colors grouped series in the order their group values sort.
var chartPalette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
}

func paletteColor(i int) color.RGBA {
	return chartPalette[i%len(chartPalette)]
}

type options struct {
	title   string
	width   vg.Length
	height  vg.Length
	bins    int
	colorBy string
	groupBy string
	store   *session.Store
}

// Option configures a chart renderer.
type Option func(*options)

// WithTitle replaces the renderer's default chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the output size in inches.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width = vg.Length(width) * vg.Inch
		o.height = vg.Length(height) * vg.Inch
	}
}

// WithBins sets the histogram bin count.
func WithBins(n int) Option {
	return func(o *options) { o.bins = n }
}

// WithColorBy colors scatter points by the values of a categorical column.
func WithColorBy(column string) Option {
	return func(o *options) { o.colorBy = column }
}

// WithGroupBy splits a box plot into one box per value of a categorical column.
func WithGroupBy(column string) Option {
	return func(o *options) { o.groupBy = column }
}

// WithStore registers the saved chart path in the session store.
func WithStore(s *session.Store) Option {
	return func(o *options) { o.store = s }
}

func buildOptions(opts []Option) options {
	o := options{
		width:  8 * vg.Inch,
		height: 6 * vg.Inch,
		bins:   defaultBins,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) titleOr(def string) string {
	if o.title != "" {
		return o.title
	}
	return def
}

// numericColumn fetches a column and checks that it is numeric.
func numericColumn(op string, f *frame.Frame, name string) (*frame.Column, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.DType() != frame.DTypeNumeric {
		return nil, errors.NewTypeMismatchError(op, name, frame.DTypeNumeric.String(), c.DType().String())
	}
	return c, nil
}

// groupColumn fetches a column and checks that it can group rows, so
// categorical or boolean.
func groupColumn(op string, f *frame.Frame, name string) (*frame.Column, error) {
	c, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if c.DType() != frame.DTypeCategorical && c.DType() != frame.DTypeBoolean {
		return nil, errors.NewTypeMismatchError(op, name, frame.DTypeCategorical.String(), c.DType().String())
	}
	return c, nil
}

// save writes the plot to path and registers it when a store is attached.
func save(p *plot.Plot, o options, path string) (string, error) {
	if err := p.Save(o.width, o.height, path); err != nil {
		return "", errors.Wrapf(err, "viz: save %s", path)
	}
	if o.store != nil {
		o.store.RegisterChart(path)
	}
	return path, nil
}
