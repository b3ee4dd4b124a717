package filter

import (
	"time"

	"github.com/YuminosukeSato/siftgo/frame"
)

// DateRangeFilter keeps rows whose datetime cell falls inside the inclusive
// [Start, End] window. A zero Start or End leaves that side open; both zero
// keeps everything. An End with no time of day covers its whole calendar
// day, so [2024-01-01, 2024-01-31] includes cells at any time on Jan 31.
type DateRangeFilter struct {
	Column string
	Start  time.Time
	End    time.Time
}

// Name implements Filter.
func (d *DateRangeFilter) Name() string { return "date" }

// Apply implements Filter. Non-datetime columns are first coerced cell by
// cell; cells that fail to coerce are null and drop out of the window.
func (d *DateRangeFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if d.Start.IsZero() && d.End.IsZero() {
		return f, nil
	}

	c, err := f.Column(d.Column)
	if err != nil {
		return nil, err
	}
	if c.DType() != frame.DTypeDatetime {
		c, err = frame.CastColumn(c, frame.DTypeDatetime)
		if err != nil {
			return nil, err
		}
	}

	end := d.End
	if !end.IsZero() && end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
		end = end.AddDate(0, 0, 1).Add(-time.Second)
	}

	keep := make([]bool, f.NumRows())
	for i := range keep {
		if !c.IsValid(i) {
			continue
		}
		t := c.Time(i)
		if !d.Start.IsZero() && t.Before(d.Start) {
			continue
		}
		if !end.IsZero() && t.After(end) {
			continue
		}
		keep[i] = true
	}
	return f.SelectMask(keep), nil
}
