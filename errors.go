package grid

import (
	"errors"
	"fmt"
)

// ErrNilAxis is returned when a Viewport or AutoFitter is constructed
// without both of its axes.
var ErrNilAxis = errors.New("grid: axis must not be nil")

// ValidationError reports an argument that violates a documented
// precondition: a negative or non-integer index, a non-positive or
// non-finite size, or reversed bounds. These are programming errors in the
// caller, surfaced immediately rather than degraded around; no operation
// that returns a ValidationError has mutated any state.
type ValidationError struct {
	Op  string // failing operation, e.g. "Axis.SetSize"
	Arg string // offending argument name
	Msg string // what was expected
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("grid: %s: %s %s", e.Op, e.Arg, e.Msg)
}

func errNonNegative(op, arg string, v int) error {
	return &ValidationError{Op: op, Arg: arg, Msg: fmt.Sprintf("must be >= 0, got %d", v)}
}

func errPositiveFinite(op, arg string, v float64) error {
	return &ValidationError{Op: op, Arg: arg, Msg: fmt.Sprintf("must be a positive finite number, got %v", v)}
}

func errNonNegativeFinite(op, arg string, v float64) error {
	return &ValidationError{Op: op, Arg: arg, Msg: fmt.Sprintf("must be a non-negative finite number, got %v", v)}
}

func errFinite(op, arg string, v float64) error {
	return &ValidationError{Op: op, Arg: arg, Msg: fmt.Sprintf("must be finite, got %v", v)}
}
