package viz

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// Histogram renders the distribution of a numeric column.
func Histogram(f *frame.Frame, column, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.Histogram")
	o := buildOptions(opts)
	c, err := numericColumn("viz.Histogram", f, column)
	if err != nil {
		return "", err
	}
	xs := c.ValidFloats()
	if len(xs) == 0 {
		return "", errors.NewValueError("viz.Histogram", fmt.Sprintf("column '%s' has no non-null values", column))
	}

	p := plot.New()
	p.Title.Text = o.titleOr(fmt.Sprintf("Histogram of %s", column))
	p.X.Label.Text = column
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(xs), o.bins)
	if err != nil {
		return "", errors.Wrap(err, "viz.Histogram")
	}
	h.FillColor = paletteColor(0)
	p.Add(h)

	return save(p, o, path)
}

// Bar renders the value counts of a categorical or boolean column,
// most frequent first.
func Bar(f *frame.Frame, column, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.Bar")
	o := buildOptions(opts)
	c, err := groupColumn("viz.Bar", f, column)
	if err != nil {
		return "", err
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < c.Len(); i++ {
		if !c.IsValid(i) {
			continue
		}
		v := c.CellString(i)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}
	if len(order) == 0 {
		return "", errors.NewValueError("viz.Bar", fmt.Sprintf("column '%s' has no non-null values", column))
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	values := make(plotter.Values, len(order))
	for i, v := range order {
		values[i] = float64(counts[v])
	}

	p := plot.New()
	p.Title.Text = o.titleOr(fmt.Sprintf("Bar chart of %s", column))
	p.X.Label.Text = column
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return "", errors.Wrap(err, "viz.Bar")
	}
	bars.Color = paletteColor(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(order...)
	if len(order) > 8 {
		p.X.Tick.Label.Rotation = math.Pi / 3
		p.X.Tick.Label.YAlign = draw.YCenter
		p.X.Tick.Label.XAlign = draw.XCenter
	}

	return save(p, o, path)
}

// Scatter renders one numeric column against another over the rows where
// both are non-null. With WithColorBy the points split into one colored
// series per value of the given categorical column; rows with a null
// group value are left out.
func Scatter(f *frame.Frame, x, y, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.Scatter")
	o := buildOptions(opts)
	xc, err := numericColumn("viz.Scatter", f, x)
	if err != nil {
		return "", err
	}
	yc, err := numericColumn("viz.Scatter", f, y)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = o.titleOr(fmt.Sprintf("Scatter plot of %s vs %s", y, x))
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())

	if o.colorBy == "" {
		pts := completePoints(xc, yc, nil, "")
		if len(pts) == 0 {
			return "", errors.NewValueError("viz.Scatter", "no complete observations")
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return "", errors.Wrap(err, "viz.Scatter")
		}
		styleScatter(sc, 0)
		p.Add(sc)
		return save(p, o, path)
	}

	gc, err := groupColumn("viz.Scatter", f, o.colorBy)
	if err != nil {
		return "", err
	}
	groups := sortedUniques(gc)
	drawn := 0
	for _, g := range groups {
		pts := completePoints(xc, yc, gc, g)
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return "", errors.Wrap(err, "viz.Scatter")
		}
		styleScatter(sc, drawn)
		p.Add(sc)
		p.Legend.Add(g, sc)
		drawn++
	}
	if drawn == 0 {
		return "", errors.NewValueError("viz.Scatter", "no complete observations")
	}
	p.Legend.Top = true

	return save(p, o, path)
}

// Line renders a numeric column over a datetime or numeric x column,
// sorted by x. Datetime axes get date-formatted ticks.
func Line(f *frame.Frame, x, y, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.Line")
	o := buildOptions(opts)
	xc, err := f.Column(x)
	if err != nil {
		return "", err
	}
	if xc.DType() != frame.DTypeDatetime && xc.DType() != frame.DTypeNumeric {
		return "", errors.NewTypeMismatchError("viz.Line", x, frame.DTypeDatetime.String(), xc.DType().String())
	}
	yc, err := numericColumn("viz.Line", f, y)
	if err != nil {
		return "", err
	}

	pts := make(plotter.XYs, 0, xc.Len())
	for i := 0; i < xc.Len(); i++ {
		if !xc.IsValid(i) || !yc.IsValid(i) {
			continue
		}
		xv := xc.Float(i)
		if xc.DType() == frame.DTypeDatetime {
			xv = float64(xc.Time(i).Unix())
		}
		pts = append(pts, plotter.XY{X: xv, Y: yc.Float(i)})
	}
	if len(pts) == 0 {
		return "", errors.NewValueError("viz.Line", "no complete observations")
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	p := plot.New()
	p.Title.Text = o.titleOr(fmt.Sprintf("Line chart of %s over %s", y, x))
	p.X.Label.Text = x
	p.Y.Label.Text = y
	if xc.DType() == frame.DTypeDatetime {
		p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02", Time: plot.UTCUnixTime}
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return "", errors.Wrap(err, "viz.Line")
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = paletteColor(0)
	p.Add(l)
	p.Add(plotter.NewGrid())

	return save(p, o, path)
}

// Box renders quartile boxes for a numeric column. With WithGroupBy it
// draws one box per value of the given categorical column; groups with
// no non-null observations are skipped.
func Box(f *frame.Frame, column, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.Box")
	o := buildOptions(opts)
	c, err := numericColumn("viz.Box", f, column)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Y.Label.Text = column
	w := vg.Points(40)

	if o.groupBy == "" {
		xs := c.ValidFloats()
		if len(xs) == 0 {
			return "", errors.NewValueError("viz.Box", fmt.Sprintf("column '%s' has no non-null values", column))
		}
		b, err := plotter.NewBoxPlot(w, 0, plotter.Values(xs))
		if err != nil {
			return "", errors.Wrap(err, "viz.Box")
		}
		b.FillColor = paletteColor(0)
		p.Add(b)
		p.Title.Text = o.titleOr(fmt.Sprintf("Boxplot of %s", column))
		p.NominalX(column)
		return save(p, o, path)
	}

	gc, err := groupColumn("viz.Box", f, o.groupBy)
	if err != nil {
		return "", err
	}
	var labels []string
	for _, g := range sortedUniques(gc) {
		var xs []float64
		for i := 0; i < c.Len(); i++ {
			if c.IsValid(i) && gc.IsValid(i) && gc.CellString(i) == g {
				xs = append(xs, c.Float(i))
			}
		}
		if len(xs) == 0 {
			continue
		}
		b, err := plotter.NewBoxPlot(w, float64(len(labels)), plotter.Values(xs))
		if err != nil {
			return "", errors.Wrap(err, "viz.Box")
		}
		b.FillColor = paletteColor(len(labels))
		p.Add(b)
		labels = append(labels, g)
	}
	if len(labels) == 0 {
		return "", errors.NewValueError("viz.Box", "no complete observations")
	}
	p.Title.Text = o.titleOr(fmt.Sprintf("Boxplot of %s by %s", column, o.groupBy))
	p.X.Label.Text = o.groupBy
	p.NominalX(labels...)

	return save(p, o, path)
}

// completePoints collects the (x, y) pairs where both cells are non-null.
// With a group column only rows whose rendered group cell equals group
// are taken.
func completePoints(xc, yc, gc *frame.Column, group string) plotter.XYs {
	var pts plotter.XYs
	for i := 0; i < xc.Len(); i++ {
		if !xc.IsValid(i) || !yc.IsValid(i) {
			continue
		}
		if gc != nil && (!gc.IsValid(i) || gc.CellString(i) != group) {
			continue
		}
		pts = append(pts, plotter.XY{X: xc.Float(i), Y: yc.Float(i)})
	}
	return pts
}

func styleScatter(sc *plotter.Scatter, i int) {
	sc.GlyphStyle.Color = paletteColor(i)
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
}

func sortedUniques(c *frame.Column) []string {
	values := c.Uniques()
	sort.Strings(values)
	return values
}
