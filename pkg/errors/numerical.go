package errors

import "math"

// CheckScalar rejects NaN and infinities in user-supplied numeric
// parameters. Filter bounds and scaler ranges pass through it before any
// row is touched, so a bad widget value fails loud instead of silently
// matching nothing.
func CheckScalar(op string, v float64) error {
	if math.IsNaN(v) {
		return NewValueError(op, "NaN is not a usable value")
	}
	if math.IsInf(v, 0) {
		return NewValueError(op, "infinite values are not usable")
	}
	return nil
}

// SafeDivide returns num/den, or 0 when den is zero or close enough to
// produce a meaningless quotient. Ratio reporting uses it so an empty
// frame reads as 0% retained rather than NaN.
func SafeDivide(num, den float64) float64 {
	if math.Abs(den) < 1e-10 {
		return 0
	}
	return num / den
}

// ClipValue bounds v to [lo, hi].
func ClipValue(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
