// Package transform は表データ変換器の共通インターフェースと学習状態の管理を提供する。
//
// preprocessingパッケージのスケーラーやエンコーダーはこのパッケージの
// Transformerインターフェースを実装し、Stateを埋め込むことでFit済み判定を共通化する。
package transform

import (
	"github.com/YuminosukeSato/siftgo/frame"
)

// Transformer はフレーム変換器の基本インターフェース
// 学習(Fit)、変換(Transform)、およびその複合操作(FitTransform)を定義する
type Transformer interface {
	// Fit は入力フレームから変換に必要な統計量を学習する
	//
	// パラメータ:
	//   - f: 学習用フレーム
	//
	// 戻り値:
	//   - error: エラーが発生した場合
	Fit(f *frame.Frame) error

	// Transform は学習済みの統計量を使ってフレームを変換する
	// 入力フレームは変更せず、新しいフレームを返す
	//
	// パラメータ:
	//   - f: 変換対象のフレーム
	//
	// 戻り値:
	//   - *frame.Frame: 変換後のフレーム
	//   - error: 未学習の場合や列が一致しない場合のエラー
	Transform(f *frame.Frame) (*frame.Frame, error)

	// FitTransform は学習と変換を一度に実行する
	//
	// パラメータ:
	//   - f: 学習・変換対象のフレーム
	//
	// 戻り値:
	//   - *frame.Frame: 変換後のフレーム
	//   - error: エラーが発生した場合
	FitTransform(f *frame.Frame) (*frame.Frame, error)
}

// InverseTransformer は逆変換をサポートする変換器のインターフェース
type InverseTransformer interface {
	Transformer

	// InverseTransform は変換されたフレームを元のスケールに戻す
	//
	// パラメータ:
	//   - f: 変換済みフレーム
	//
	// 戻り値:
	//   - *frame.Frame: 逆変換後のフレーム
	//   - error: エラーが発生した場合
	InverseTransform(f *frame.Frame) (*frame.Frame, error)
}

// ParamsGetter は変換器のハイパーパラメータを公開するインターフェース
type ParamsGetter interface {
	// GetParams は変換器のパラメータをマップ形式で返す
	GetParams() map[string]interface{}
}

// Fitted はTransformerとStateの両方を満たす変換器が実装する
// 学習状態の問い合わせインターフェース
type Fitted interface {
	IsFitted() bool
}
