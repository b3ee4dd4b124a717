package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewFilterError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Apply",
			kind:     "invalid range",
			err:      fmt.Errorf("test error"),
			wantMsg:  "siftgo: Apply: invalid range: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Run",
			kind:     "empty frame",
			err:      nil,
			wantMsg:  "siftgo: Run: empty frame",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFilterError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// %+v にこのファイル名が出ればWithStackが効いている
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("stack trace should name the construction site")
				}
			}

			var filterErr *FilterError
			if !As(err, &filterErr) {
				t.Error("As should find *FilterError in the chain")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	// 軸0は行
	err := NewDimensionError("NewFrame", 10, 7, 0)
	want := "siftgo: NewFrame: dimension mismatch on axis 0 (rows). Expected 10, got 7"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// 軸1は列
	err = NewDimensionError("Select", 3, 5, 1)
	want = "siftgo: Select: dimension mismatch on axis 1 (columns). Expected 3, got 5"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("As should find *DimensionError in the chain")
	}
	if dimErr.Axis != 1 {
		t.Errorf("Axis = %d, want 1", dimErr.Axis)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("StandardScaler", "Transform")

	want := "siftgo: StandardScaler: this transformer is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("As should find *NotFittedError in the chain")
	}
}

func TestNewColumnNotFoundError(t *testing.T) {
	err := NewColumnNotFoundError("NumericRangeFilter", "age")

	want := "siftgo: NumericRangeFilter: column 'age' not found"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var cnfErr *ColumnNotFoundError
	if !As(err, &cnfErr) {
		t.Error("As should find *ColumnNotFoundError in the chain")
	}
	if cnfErr.Column != "age" {
		t.Errorf("Column = %v, want age", cnfErr.Column)
	}
}

func TestNewTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("DateRangeFilter", "signup", "datetime", "categorical")

	// 実際のdtypeが先、要求が後
	want := "siftgo: DateRangeFilter: column 'signup' has dtype categorical, want datetime"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var tmErr *TypeMismatchError
	if !As(err, &tmErr) {
		t.Error("As should find *TypeMismatchError in the chain")
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		message string
		wantMsg string
	}{
		{
			name:    "range bounds",
			op:      "MinMaxScaler.Fit",
			message: "invalid range [1, 1]",
			wantMsg: "siftgo: MinMaxScaler.Fit: invalid range [1, 1]",
		},
		{
			name:    "empty input",
			op:      "viz.Histogram",
			message: "column 'age' has no non-null values",
			wantMsg: "siftgo: viz.Histogram: column 'age' has no non-null values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.op, tt.message)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("As should find *ValueError in the chain")
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("min", "must not exceed max", 45.0)

	want := "siftgo: validation failed for parameter 'min': must not exceed max (got: 45)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("As should find *ValidationError in the chain")
	}
	if valErr.ParamName != "min" {
		t.Errorf("ParamName = %v, want min", valErr.ParamName)
	}
}

func TestNewFilterFallbackWarning(t *testing.T) {
	warn := NewFilterFallbackWarning("numeric", "age", "non-finite bound")

	want := "numeric filter on column 'age' failed and was skipped: non-finite bound"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}

	// 列に紐付かないフィルタは列名抜きの文になる
	global := NewFilterFallbackWarning("search", "", "frame too wide")
	wantGlobal := "search filter failed and was skipped: frame too wide"
	if global.Error() != wantGlobal {
		t.Errorf("Error() = %v, want %v", global.Error(), wantGlobal)
	}

	var fbWarn *FilterFallbackWarning
	if !As(warn, &fbWarn) {
		t.Error("As should find *FilterFallbackWarning in the chain")
	}
}

func TestNewDataConversionWarning(t *testing.T) {
	warn := NewDataConversionWarning("categorical", "numeric", "cast requested")

	want := "data converted from categorical to numeric. Reason: cast requested"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestNewCardinalityWarning(t *testing.T) {
	warn := NewCardinalityWarning("city", 120, 50)

	want := "column 'city' has 120 unique values; option list truncated to 50."
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	w := NewFilterFallbackWarning("sql", "", "syntax error")
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler did not run")
	}
	if captured.Error() != w.Error() {
		t.Errorf("captured = %v, want %v", captured, w)
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyFrame, "in SearchFilter.Apply")

	// ラップを挟んでもセンチネルは見える
	if !Is(wrapped, ErrEmptyFrame) {
		t.Error("Is(wrapped, ErrEmptyFrame) = false")
	}
	if !strings.Contains(wrapped.Error(), "in SearchFilter.Apply") {
		t.Error("wrapped message should contain the context")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNoNumericColumns, "in %s: %d columns scanned", "Describe", 5)

	if !Is(wrapped, ErrNoNumericColumns) {
		t.Error("Is(wrapped, ErrNoNumericColumns) = false")
	}
	expectedMsg := "in Describe: 5 columns scanned"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("wrapped message should contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewFilterError("Chain.Run", "step failed", err2)

	// 3段重ねても元のメッセージが残る
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("chain should surface the base error text")
	}

	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("detailed format should carry the stack trace")
	}
}
