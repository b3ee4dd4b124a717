package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/siftgo/core/transform"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// StandardScaler は数値列を平均0、標準偏差1に変換するスケーラー
// 統計量はnullセルを除いて計算され、nullセルは変換後もnullのまま残る
type StandardScaler struct {
	transform.State

	// Columns は対象列。空の場合はFit時に全数値列が選ばれる
	Columns []string

	// Mean は列ごとの平均値
	Mean map[string]float64

	// Scale は列ごとの標準偏差（母標準偏差）。ゼロに近い場合は
	// ゼロ除算を避けるため1に置き換える
	Scale map[string]float64

	cols []string
}

var _ transform.InverseTransformer = (*StandardScaler)(nil)

// NewStandardScaler は新しいStandardScalerを作成する
//
// パラメータ:
//   - columns: 対象の数値列。省略した場合はFit時の全数値列
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler("age", "salary")
//	scaled, err := scaler.FitTransform(f)
func NewStandardScaler(columns ...string) *StandardScaler {
	return &StandardScaler{Columns: columns}
}

// Fit は各対象列の平均と標準偏差を学習する
//
// パラメータ:
//   - f: 学習用フレーム
//
// 戻り値:
//   - error: フレームが空、列が存在しない、数値型でない、または
//     有効な値を持たない場合のエラー
func (s *StandardScaler) Fit(f *frame.Frame) error {
	if f.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyFrame, "preprocessing: StandardScaler.Fit")
	}
	cols, err := resolveNumeric("StandardScaler.Fit", f, s.Columns)
	if err != nil {
		return err
	}

	mean := make(map[string]float64, len(cols))
	scale := make(map[string]float64, len(cols))
	for _, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		xs := c.ValidFloats()
		if len(xs) == 0 {
			return errors.NewValueError("StandardScaler.Fit", fmt.Sprintf("column '%s' has no non-null values", name))
		}
		m := stat.Mean(xs, nil)
		var ss float64
		for _, v := range xs {
			d := v - m
			ss += d * d
		}
		sc := math.Sqrt(ss / float64(len(xs)))
		if sc < 1e-8 {
			sc = 1.0
		}
		mean[name] = m
		scale[name] = sc
	}

	s.cols = cols
	s.Mean = mean
	s.Scale = scale
	s.SetDimensions(f.NumRows(), len(cols))
	s.SetFitted()
	return nil
}

// Transform は学習済みの統計量で各対象列を標準化した新しいフレームを返す
func (s *StandardScaler) Transform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.RequireFitted("StandardScaler", "Transform"); err != nil {
		return nil, err
	}
	return transformColumns("StandardScaler.Transform", f, s.cols, func(name string, v float64) float64 {
		return (v - s.Mean[name]) / s.Scale[name]
	})
}

// FitTransform は学習と変換を一度に実行する
func (s *StandardScaler) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.Fit(f); err != nil {
		return nil, err
	}
	return s.Transform(f)
}

// InverseTransform は標準化された列を元のスケールに戻す
func (s *StandardScaler) InverseTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.RequireFitted("StandardScaler", "InverseTransform"); err != nil {
		return nil, err
	}
	return transformColumns("StandardScaler.InverseTransform", f, s.cols, func(name string, v float64) float64 {
		return v*s.Scale[name] + s.Mean[name]
	})
}

// GetParams はスケーラーのパラメータを返す
func (s *StandardScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"columns": append([]string(nil), s.cols...),
		"mean":    s.Mean,
		"scale":   s.Scale,
	}
}

// MinMaxScaler は数値列を指定レンジ（デフォルト[0, 1]）へ線形に写すスケーラー
type MinMaxScaler struct {
	transform.State

	// Columns は対象列。空の場合はFit時に全数値列が選ばれる
	Columns []string

	// RangeMin, RangeMax は変換後のレンジ
	RangeMin float64
	RangeMax float64

	// Clip がtrueの場合、Transformは学習レンジ外の値を
	// RangeMin/RangeMaxへ切り詰める
	Clip bool

	// DataMin, DataMax は学習した列ごとの最小値と最大値
	DataMin map[string]float64
	DataMax map[string]float64

	cols []string
}

var _ transform.InverseTransformer = (*MinMaxScaler)(nil)

// NewMinMaxScaler はレンジ[0, 1]のMinMaxScalerを作成する
func NewMinMaxScaler(columns ...string) *MinMaxScaler {
	return &MinMaxScaler{RangeMin: 0, RangeMax: 1, Columns: columns}
}

// Fit は各対象列の最小値と最大値を学習する
func (s *MinMaxScaler) Fit(f *frame.Frame) error {
	if f.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyFrame, "preprocessing: MinMaxScaler.Fit")
	}
	if err := errors.CheckScalar("MinMaxScaler.Fit", s.RangeMin); err != nil {
		return err
	}
	if err := errors.CheckScalar("MinMaxScaler.Fit", s.RangeMax); err != nil {
		return err
	}
	if s.RangeMin >= s.RangeMax {
		return errors.NewValueError("MinMaxScaler.Fit",
			fmt.Sprintf("invalid range [%g, %g]", s.RangeMin, s.RangeMax))
	}
	cols, err := resolveNumeric("MinMaxScaler.Fit", f, s.Columns)
	if err != nil {
		return err
	}

	dataMin := make(map[string]float64, len(cols))
	dataMax := make(map[string]float64, len(cols))
	for _, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		xs := c.ValidFloats()
		if len(xs) == 0 {
			return errors.NewValueError("MinMaxScaler.Fit", fmt.Sprintf("column '%s' has no non-null values", name))
		}
		lo, hi := xs[0], xs[0]
		for _, v := range xs[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		dataMin[name] = lo
		dataMax[name] = hi
	}

	s.cols = cols
	s.DataMin = dataMin
	s.DataMax = dataMax
	s.SetDimensions(f.NumRows(), len(cols))
	s.SetFitted()
	return nil
}

// span は列の値域を返す。定数列はゼロ除算を避けるため1として扱い、
// すべての値がRangeMinへ写る
func (s *MinMaxScaler) span(name string) float64 {
	d := s.DataMax[name] - s.DataMin[name]
	if d < 1e-8 {
		return 1.0
	}
	return d
}

// Transform は学習済みの最小値・最大値で各対象列をレンジへ写した
// 新しいフレームを返す
func (s *MinMaxScaler) Transform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.RequireFitted("MinMaxScaler", "Transform"); err != nil {
		return nil, err
	}
	return transformColumns("MinMaxScaler.Transform", f, s.cols, func(name string, v float64) float64 {
		out := s.RangeMin + (v-s.DataMin[name])*(s.RangeMax-s.RangeMin)/s.span(name)
		if s.Clip {
			out = errors.ClipValue(out, s.RangeMin, s.RangeMax)
		}
		return out
	})
}

// FitTransform は学習と変換を一度に実行する
func (s *MinMaxScaler) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.Fit(f); err != nil {
		return nil, err
	}
	return s.Transform(f)
}

// InverseTransform はレンジへ写された列を元のスケールに戻す
func (s *MinMaxScaler) InverseTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := s.RequireFitted("MinMaxScaler", "InverseTransform"); err != nil {
		return nil, err
	}
	return transformColumns("MinMaxScaler.InverseTransform", f, s.cols, func(name string, v float64) float64 {
		return s.DataMin[name] + (v-s.RangeMin)*s.span(name)/(s.RangeMax-s.RangeMin)
	})
}

// GetParams はスケーラーのパラメータを返す
func (s *MinMaxScaler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"columns":   append([]string(nil), s.cols...),
		"range_min": s.RangeMin,
		"range_max": s.RangeMax,
		"clip":      s.Clip,
		"data_min":  s.DataMin,
		"data_max":  s.DataMax,
	}
}
