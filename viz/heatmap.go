package viz

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/YuminosukeSato/siftgo/explore"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// corrGrid adapts a correlation matrix to the heat map grid interface.
// Cells without a defined correlation render at the palette midpoint.
type corrGrid struct {
	names []string
	m     *mat.SymDense
}

func (g corrGrid) Dims() (c, r int) { return len(g.names), len(g.names) }

func (g corrGrid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func (g corrGrid) X(c int) float64 { return float64(c) }

func (g corrGrid) Y(r int) float64 { return float64(r) }

// nameTicks places one labeled tick per column index.
type nameTicks struct {
	names []string
}

func (t nameTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t.names))
	for i, name := range t.names {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: name})
	}
	return ticks
}

// CorrelationHeatmap renders the Pearson correlation matrix of the given
// numeric columns (all of them when none are named) on a blue-to-red
// diverging scale pinned to [-1, 1].
func CorrelationHeatmap(f *frame.Frame, path string, opts ...Option) (out string, err error) {
	defer errors.Recover(&err, "viz.CorrelationHeatmap")
	o := buildOptions(opts)
	corr, err := explore.Correlation(f)
	if err != nil {
		return "", err
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	h := plotter.NewHeatMap(corrGrid{names: corr.Columns, m: corr.Matrix}, cm.Palette(256))
	h.Min = -1
	h.Max = 1

	p := plot.New()
	p.Title.Text = o.titleOr("Correlation Matrix")
	p.X.Tick.Marker = nameTicks{names: corr.Columns}
	p.Y.Tick.Marker = nameTicks{names: corr.Columns}
	if len(corr.Columns) > 8 {
		p.X.Tick.Label.Rotation = math.Pi / 3
	}
	p.Add(h)

	return save(p, o, path)
}
