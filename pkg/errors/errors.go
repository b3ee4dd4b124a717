// Package errors はSiftGo全体で使う型付きエラーと警告の仕組みを定義します。
// エラー型はzerologの構造化出力に対応し、警告はフィルタのフェイルオープン
// 動作をユーザーへ伝えるために使われます。警告の扱いはpandasのwarningsの
// 流儀に倣っています。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// 置き換えられるまでは標準ログへ書き出す
		log.Printf("SiftGo-Warning: %v\n", w)
	}
	// zerolog連携は循環importを避けるため関数値で受け取る
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告の配送先を差し替えます。
// FilterFallbackWarningなどの警告をどう扱うかを呼び出し側で制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を捨てる
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc は警告をzerologへ流す関数を登録します。
// 登録されている間は通常のハンドラより優先されます。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を1件配送します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerolog関数が登録されていればそちらへ
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// 未登録なら現在のハンドラへ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	フィルタリング特有の警告型
//
// ===========================================================================

// FilterFallbackWarning はフィルタの適用が失敗し、入力フレームを
// そのまま返した場合（フェイルオープン）に発生する警告です。
type FilterFallbackWarning struct {
	Filter string
	Column string
	Reason string
}

func (w *FilterFallbackWarning) Error() string {
	if w.Column != "" {
		return fmt.Sprintf("%s filter on column '%s' failed and was skipped: %s", w.Filter, w.Column, w.Reason)
	}
	return fmt.Sprintf("%s filter failed and was skipped: %s", w.Filter, w.Reason)
}

// MarshalZerologObject は警告の内容をzerologイベントのフィールドへ書き出します。
func (w *FilterFallbackWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("filter", w.Filter).
		Str("column", w.Column).
		Str("reason", w.Reason).
		Str("type", "FilterFallbackWarning")
}

// NewFilterFallbackWarning はFilterFallbackWarningを生成します。
func NewFilterFallbackWarning(filter, column, reason string) *FilterFallbackWarning {
	return &FilterFallbackWarning{Filter: filter, Column: column, Reason: reason}
}

// DataConversionWarning は読み込みや変換の過程で列の型が黙って
// 変わったことを伝える警告です。
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("data converted from %s to %s. Reason: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject は警告の内容をzerologイベントのフィールドへ書き出します。
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning はDataConversionWarningを生成します。
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// CardinalityWarning はカテゴリ列の一意値の数が表示上限を超えた場合に発生する警告です。
// フィルタ自体には上限がなく、選択肢の列挙のみが切り詰められます。
type CardinalityWarning struct {
	Column string
	Unique int
	Limit  int
}

func (w *CardinalityWarning) Error() string {
	return fmt.Sprintf("column '%s' has %d unique values; option list truncated to %d.", w.Column, w.Unique, w.Limit)
}

// NewCardinalityWarning はCardinalityWarningを生成します。
func NewCardinalityWarning(column string, unique, limit int) *CardinalityWarning {
	return &CardinalityWarning{Column: column, Unique: unique, Limit: limit}
}

// ===========================================================================
//
//	型付きエラー
//
// ===========================================================================

// NotFittedError はFitを呼ぶ前に変換器を使った場合のエラーです。
type NotFittedError struct {
	Transformer string
	Method      string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("siftgo: %s: this transformer is not fitted yet. Call Fit() before using %s()", e.Transformer, e.Method)
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transformer", e.Transformer).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError はNotFittedErrorを生成し、発生位置のスタックトレースを
// 付けて返します。
func NewNotFittedError(transformer, method string) error {
	err := &NotFittedError{Transformer: transformer, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力の行数または列数が期待と食い違う場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0なら行、1なら列
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("siftgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError はDimensionErrorを生成し、発生位置のスタックトレースを
// 付けて返します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ColumnNotFoundError はフレームに存在しない列名を指定した場合のエラーです。
type ColumnNotFoundError struct {
	Op     string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("siftgo: %s: column '%s' not found", e.Op, e.Column)
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError はColumnNotFoundErrorを生成し、発生位置の
// スタックトレースを付けて返します。
func NewColumnNotFoundError(op, column string) error {
	err := &ColumnNotFoundError{Op: op, Column: column}
	return errors.WithStack(err)
}

// TypeMismatchError は列のdtypeが操作の要求と合わない場合のエラーです。
type TypeMismatchError struct {
	Op     string
	Column string
	Want   string
	Got    string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("siftgo: %s: column '%s' has dtype %s, want %s", e.Op, e.Column, e.Got, e.Want)
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *TypeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("want", e.Want).
		Str("got", e.Got).
		Str("type", "TypeMismatchError")
}

// NewTypeMismatchError はTypeMismatchErrorを生成し、発生位置の
// スタックトレースを付けて返します。
func NewTypeMismatchError(op, column, want, got string) error {
	err := &TypeMismatchError{Op: op, Column: column, Want: want, Got: got}
	return errors.WithStack(err)
}

// ValidationError はフィルタや変換のパラメータが検証で拒否された場合の
// エラーです。値そのものの不正を示すValueErrorに対し、こちらはどの
// パラメータがなぜ拒否されたかを保持します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("siftgo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError はValidationErrorを生成し、発生位置のスタックトレースを
// 付けて返します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は操作に渡された値が不正な場合の汎用エラーです。
// 数値レンジの下限が上限を上回っている場合などに使われます。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("siftgo: %s: %s", e.Op, e.Message)
}

// NewValueError はValueErrorを生成し、発生位置のスタックトレースを
// 付けて返します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// FilterError はフィルタ適用の失敗を種別付きで包むエラーです。
type FilterError struct {
	Op   string
	Kind string
	Err  error
}

func (e *FilterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("siftgo: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("siftgo: %s: %s", e.Op, e.Kind)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はエラーの内容をzerologイベントのフィールドへ書き出します。
func (e *FilterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("kind", e.Kind).
		Str("type", "FilterError")
	if e.Err != nil {
		event.AnErr("cause", e.Err)
	}
}

// NewFilterError はFilterErrorを生成し、発生位置のスタックトレースを
// 付けて返します。
func NewFilterError(op, kind string, err error) error {
	filterErr := &FilterError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(filterErr)
}

// ===========================================================================
//
//	cockroachdb/errors の再エクスポート
//
// ===========================================================================

// Is はerrのチェーンにtargetが含まれるかを報告します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はerrのチェーンからtargetの型のエラーを取り出します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap はエラーに文脈メッセージを重ねます。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf はフォーマットした文脈メッセージを重ねます。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New はスタックトレース付きの新しいエラーを返します。
func New(message string) error {
	return errors.New(message)
}

// Newf はフォーマットしたメッセージでNewと同じことをします。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack は現在位置のスタックトレースをエラーに付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	センチネルエラー
//
// ===========================================================================

var (
	// ErrEmptyFrame は行を持たないフレームを操作した場合のエラーです。
	ErrEmptyFrame = New("empty frame")

	// ErrNoNumericColumns は数値列を要する操作で数値列が一つも
	// 見つからない場合のエラーです。
	ErrNoNumericColumns = New("no numeric columns")

	// ErrUnsupportedDType は未対応の列型を要求された場合のエラーです。
	ErrUnsupportedDType = New("unsupported dtype")
)
