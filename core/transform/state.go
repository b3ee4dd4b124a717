package transform

import (
	"sync"

	"github.com/YuminosukeSato/siftgo/pkg/errors"
)

// State は変換器の学習状態を管理する構造体
// スケーラーやエンコーダーに埋め込んで、Fit済みかどうかの判定と
// 学習時のデータ形状の記録を共通化する
type State struct {
	mu sync.RWMutex

	fitted bool

	// nRows は学習に使用した行数
	nRows int

	// nCols は学習に使用した列数
	nCols int
}

// NewState は新しいStateインスタンスを作成する
//
// 戻り値:
//   - *State: 未学習状態のStateインスタンス
func NewState() *State {
	return &State{}
}

// IsFitted は変換器が学習済みかどうかを返す
//
// 戻り値:
//   - bool: 学習済みの場合true
func (s *State) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted は変換器を学習済み状態に設定する
func (s *State) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset は変換器を未学習状態にリセットする
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nRows = 0
	s.nCols = 0
}

// SetDimensions は学習データの形状を記録する
//
// パラメータ:
//   - rows: 行数
//   - cols: 列数
func (s *State) SetDimensions(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nRows = rows
	s.nCols = cols
}

// Dimensions は学習データの形状を返す
//
// 戻り値:
//   - rows: 行数
//   - cols: 列数
func (s *State) Dimensions() (rows, cols int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nRows, s.nCols
}

// RequireFitted は変換器が学習済みであることを要求する
// 未学習の場合はNotFittedErrorを返す
//
// パラメータ:
//   - name: 変換器名 (例: "StandardScaler")
//   - method: 呼び出し元のメソッド名 (例: "Transform")
//
// 戻り値:
//   - error: 未学習の場合はNotFittedError、学習済みの場合はnil
func (s *State) RequireFitted(name, method string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.fitted {
		return errors.NewNotFittedError(name, method)
	}
	return nil
}
