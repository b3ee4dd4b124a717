package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is a panic converted into an error by Recover. It keeps the
// panic value and the goroutine stack from the moment of recovery, so a
// fail-open warning can still say where a filter or renderer blew up.
type PanicError struct {
	// Op names the operation that panicked, e.g. "filter.numeric".
	Op string

	// Value is the value that was passed to panic().
	Value any

	// Stack is the goroutine stack captured during recovery.
	Stack string
}

// NewPanicError captures the current stack and wraps the panic value.
func NewPanicError(op string, value any) *PanicError {
	return &PanicError{
		Op:    op,
		Value: value,
		Stack: string(debug.Stack()),
	}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("siftgo: %s: recovered from panic: %v", e.Op, e.Value)
}

// String renders the error together with the captured stack.
func (e *PanicError) String() string {
	return e.Error() + "\n" + e.Stack
}

// Recover converts a panic into an error on the enclosing function's named
// return value. Defer it at the top of operations that run code outside the
// module's control, such as a filter step or a chart backend:
//
//	func applyStep(flt Filter, f *frame.Frame) (out *frame.Frame, err error) {
//	    defer errors.Recover(&err, "filter."+flt.Name())
//	    return flt.Apply(f)
//	}
//
// When no panic happens, *err is left alone. When the function had already
// set an error before panicking, the panic message wraps it so neither is
// lost and errors.Is still reaches the original.
func Recover(err *error, op string) {
	r := recover()
	if r == nil {
		return
	}
	p := NewPanicError(op, r)
	if *err == nil {
		*err = p
		return
	}
	*err = Wrapf(*err, "%s", p.Error())
}
