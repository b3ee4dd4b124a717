package preprocessing

import (
	"fmt"
	"math"
	"sort"

	"github.com/YuminosukeSato/siftgo/core/parallel"
	"github.com/YuminosukeSato/siftgo/core/transform"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// OneHotEncoder はカテゴリ列を値ごとのブール列に展開するエンコーダー
// 展開後の列名は「元の列名_値」で、元の列は取り除かれ、新しい列は
// フレームの末尾に値のソート順で並ぶ。nullセルと未知の値の行は
// すべての列でfalseになる
type OneHotEncoder struct {
	transform.State

	// Columns は対象列。空の場合はFit時の全カテゴリ列が選ばれる
	Columns []string

	// Categories は列ごとに学習した値の集合（ソート済み）
	Categories map[string][]string

	cols []string
}

var _ transform.Transformer = (*OneHotEncoder)(nil)

// NewOneHotEncoder は新しいOneHotEncoderを作成する
func NewOneHotEncoder(columns ...string) *OneHotEncoder {
	return &OneHotEncoder{Columns: columns}
}

// Fit は各対象列の値の集合を学習する
func (e *OneHotEncoder) Fit(f *frame.Frame) error {
	if f.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyFrame, "preprocessing: OneHotEncoder.Fit")
	}
	cols, err := resolveCategorical("OneHotEncoder.Fit", f, e.Columns)
	if err != nil {
		return err
	}

	categories := make(map[string][]string, len(cols))
	for _, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		values := c.Uniques()
		if len(values) == 0 {
			return errors.NewValueError("OneHotEncoder.Fit", fmt.Sprintf("column '%s' has no non-null values", name))
		}
		sort.Strings(values)
		categories[name] = values
	}

	e.cols = cols
	e.Categories = categories
	e.SetDimensions(f.NumRows(), len(cols))
	e.SetFitted()
	return nil
}

// Transform は学習した値集合で各対象列をブール列群に置き換えた
// 新しいフレームを返す
func (e *OneHotEncoder) Transform(f *frame.Frame) (*frame.Frame, error) {
	if err := e.RequireFitted("OneHotEncoder", "Transform"); err != nil {
		return nil, err
	}
	out := f.Copy()
	for _, name := range e.cols {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		values := e.Categories[name]
		index := make(map[string]int, len(values))
		for k, v := range values {
			index[v] = k
		}

		n := c.Len()
		dummies := make([][]bool, len(values))
		for k := range dummies {
			dummies[k] = make([]bool, n)
		}
		parallel.ParallelizeWithThreshold(n, parallelRowThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				if !c.IsValid(i) {
					continue
				}
				if k, ok := index[c.CellString(i)]; ok {
					dummies[k][i] = true
				}
			}
		})

		out, err = out.DropColumns(name)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			out, err = out.WithColumn(frame.NewBooleanColumn(name+"_"+v, dummies[k], nil))
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// FitTransform は学習と変換を一度に実行する
func (e *OneHotEncoder) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := e.Fit(f); err != nil {
		return nil, err
	}
	return e.Transform(f)
}

// LabelEncoder はカテゴリ列を序数（0..k-1）へ符号化するエンコーダー
// 序数は値のソート順に割り当てられ、列は数値型になる。nullセルは
// nullのまま残り、学習時に見ていない値はエラーになる
type LabelEncoder struct {
	transform.State

	// Columns は対象列。空の場合はFit時の全カテゴリ列が選ばれる
	Columns []string

	// Classes は列ごとに学習した値（ソート済み）。序数は添字に一致する
	Classes map[string][]string

	cols []string
}

var _ transform.InverseTransformer = (*LabelEncoder)(nil)

// NewLabelEncoder は新しいLabelEncoderを作成する
func NewLabelEncoder(columns ...string) *LabelEncoder {
	return &LabelEncoder{Columns: columns}
}

// Fit は各対象列の値とその序数割り当てを学習する
func (e *LabelEncoder) Fit(f *frame.Frame) error {
	if f.NumRows() == 0 {
		return errors.Wrap(errors.ErrEmptyFrame, "preprocessing: LabelEncoder.Fit")
	}
	cols, err := resolveCategorical("LabelEncoder.Fit", f, e.Columns)
	if err != nil {
		return err
	}

	classes := make(map[string][]string, len(cols))
	for _, name := range cols {
		c, err := f.Column(name)
		if err != nil {
			return err
		}
		values := c.Uniques()
		if len(values) == 0 {
			return errors.NewValueError("LabelEncoder.Fit", fmt.Sprintf("column '%s' has no non-null values", name))
		}
		sort.Strings(values)
		classes[name] = values
	}

	e.cols = cols
	e.Classes = classes
	e.SetDimensions(f.NumRows(), len(cols))
	e.SetFitted()
	return nil
}

// Transform は各対象列を序数の数値列に置き換えた新しいフレームを返す
func (e *LabelEncoder) Transform(f *frame.Frame) (*frame.Frame, error) {
	if err := e.RequireFitted("LabelEncoder", "Transform"); err != nil {
		return nil, err
	}
	out := f.Copy()
	for _, name := range e.cols {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		index := make(map[string]int, len(e.Classes[name]))
		for k, v := range e.Classes[name] {
			index[v] = k
		}

		n := c.Len()
		codes := make([]float64, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			v := c.CellString(i)
			k, ok := index[v]
			if !ok {
				return nil, errors.NewValueError("LabelEncoder.Transform",
					fmt.Sprintf("unseen label '%s' in column '%s'", v, name))
			}
			codes[i] = float64(k)
			valid[i] = true
		}
		out, err = out.WithColumn(frame.NewNumericColumn(name, codes, valid))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FitTransform は学習と変換を一度に実行する
func (e *LabelEncoder) FitTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := e.Fit(f); err != nil {
		return nil, err
	}
	return e.Transform(f)
}

// InverseTransform は序数の列を学習時の値へ戻す
func (e *LabelEncoder) InverseTransform(f *frame.Frame) (*frame.Frame, error) {
	if err := e.RequireFitted("LabelEncoder", "InverseTransform"); err != nil {
		return nil, err
	}
	out := f.Copy()
	for _, name := range e.cols {
		c, err := out.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType() != frame.DTypeNumeric {
			return nil, errors.NewTypeMismatchError("LabelEncoder.InverseTransform", name,
				frame.DTypeNumeric.String(), c.DType().String())
		}
		classes := e.Classes[name]

		n := c.Len()
		labels := make([]string, n)
		valid := make([]bool, n)
		for i := 0; i < n; i++ {
			if !c.IsValid(i) {
				continue
			}
			k := int(math.Round(c.Float(i)))
			if k < 0 || k >= len(classes) {
				return nil, errors.NewValueError("LabelEncoder.InverseTransform",
					fmt.Sprintf("code %d out of range for column '%s'", k, name))
			}
			labels[i] = classes[k]
			valid[i] = true
		}
		out, err = out.WithColumn(frame.NewCategoricalColumn(name, labels, valid))
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
