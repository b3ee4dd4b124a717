// Package preprocessing はフレームに対するscikit-learnスタイルの変換器を提供する。
//
// スケーラーとエンコーダーはcore/transformのTransformerインターフェースを実装し、
// Fit前のTransform呼び出しはNotFittedErrorになる。変換は常に新しいフレームを返し、
// 入力フレームは変更しない。nullセルは統計量の学習から除外され、変換後もnullの
// まま残る。
package preprocessing

import (
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// parallelRowThreshold を超える行数の変換は行の範囲を分割して並列に実行する
const parallelRowThreshold = 10000

// resolveNumeric は対象の数値列を決定する。指定が空なら全数値列、
// 指定がある場合は存在して数値型であることを検証する
func resolveNumeric(op string, f *frame.Frame, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return f.ColumnsOf(frame.DTypeNumeric), nil
	}
	for _, name := range requested {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType() != frame.DTypeNumeric {
			return nil, errors.NewTypeMismatchError(op, name, frame.DTypeNumeric.String(), c.DType().String())
		}
	}
	return append([]string(nil), requested...), nil
}

// resolveCategorical は対象のカテゴリ列を決定する
func resolveCategorical(op string, f *frame.Frame, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return f.ColumnsOf(frame.DTypeCategorical), nil
	}
	for _, name := range requested {
		c, err := f.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType() != frame.DTypeCategorical {
			return nil, errors.NewTypeMismatchError(op, name, frame.DTypeCategorical.String(), c.DType().String())
		}
	}
	return append([]string(nil), requested...), nil
}

// applyNumeric は数値列の各有効セルにfnを適用した新しい列を返す。
// fnがNaNを返したセルはnullになる
func applyNumeric(c *frame.Column, fn func(float64) float64) *frame.Column {
	vals := make([]float64, c.Len())
	valid := make([]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		if !c.IsValid(i) {
			continue
		}
		vals[i] = fn(c.Float(i))
		valid[i] = true
	}
	return frame.NewNumericColumn(c.Name(), vals, valid)
}

// transformColumns は各対象列にfnを適用したフレームのコピーを返す
func transformColumns(op string, f *frame.Frame, cols []string, fn func(name string, v float64) float64) (*frame.Frame, error) {
	out := f.Copy()
	for _, name := range cols {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType() != frame.DTypeNumeric {
			return nil, errors.NewTypeMismatchError(op, name, frame.DTypeNumeric.String(), c.DType().String())
		}
		nc := applyNumeric(c, func(v float64) float64 { return fn(name, v) })
		out, err = out.WithColumn(nc)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
