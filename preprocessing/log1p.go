package preprocessing

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/siftgo/core/transform"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// Log1pTransformer は右に裾を引く分布を緩和するlog(1 + x)変換
// 列の最小値が-1以下の場合はFit時にシフト量|min| + 1を学習し、
// 変換前に加算して定義域に収める
type Log1pTransformer struct {
	transform.State

	// Columns は対象列。空の場合はFit時に全数値列が選ばれる
	Columns []string

	// Shift は列ごとの加算シフト量。シフト不要の列は0
	Shift map[string]float64

	cols []string
}

var _ transform.InverseTransformer = (*Log1pTransformer)(nil)

// NewLog1pTransformer は新しいLog1pTransformerを作成する
func NewLog1pTransformer(columns ...string) *Log1pTransformer {
	return &Log1pTransformer{Columns: columns}
}

// Fit は各対象列の最小値からシフト量を学習する
func (t *Log1pTransformer) Fit(f *frame.Frame) error {
	if f.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyFrame, "preprocessing: Log1pTransformer.Fit")
	}
	cols, err := resolveNumeric("Log1pTransformer.Fit", f, t.Columns)
	if err != nil {
		return err
	}

	shift := make(map[string]float64, len(cols))
	for _, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		xs := c.ValidFloats()
		if len(xs) == 0 {
			return errors.NewValueError("Log1pTransformer.Fit", fmt.Sprintf("column '%s' has no non-null values", name))
		}
		lo := xs[0]
		for _, v := range xs[1:] {
			if v < lo {
				lo = v
			}
		}
		if lo <= -1 {
			shift[name] = math.Abs(lo) + 1
		} else {
			shift[name] = 0
		}
	}

	t.cols = cols
	t.Shift = shift
	t.SetDimensions(f.NumRows(), len(cols))
	t.SetFitted()
	return nil
}

// Transform は各対象列にlog(1 + x + shift)を適用した新しいフレームを返す
// シフト後も定義域外に残る値（x + shift <= -1）はnullになる
func (t *Log1pTransformer) Transform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.RequireFitted("Log1pTransformer", "Transform"); err != nil {
		return nil, err
	}
	return transformColumns("Log1pTransformer.Transform", f, t.cols, func(name string, v float64) float64 {
		x := v + t.Shift[name]
		if x <= -1 {
			return math.NaN()
		}
		return math.Log1p(x)
	})
}

// FitTransform は学習と変換を一度に実行する
func (t *Log1pTransformer) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.Fit(f); err != nil {
		return nil, err
	}
	return t.Transform(f)
}

// InverseTransform はlog1p変換された列を元のスケールに戻す
func (t *Log1pTransformer) InverseTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := t.RequireFitted("Log1pTransformer", "InverseTransform"); err != nil {
		return nil, err
	}
	return transformColumns("Log1pTransformer.InverseTransform", f, t.cols, func(name string, v float64) float64 {
		return math.Expm1(v) - t.Shift[name]
	})
}
