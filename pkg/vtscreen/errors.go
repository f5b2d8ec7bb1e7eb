package vtscreen

import "fmt"

// AllocationFailure is returned by operations that allocate (NewScreen,
// Resize, SetScrollbackSize) when the allocation cannot be completed.
// The Screen's prior state is left unchanged when this is returned.
type AllocationFailure struct {
	Op  string
	Err error
}

func (e *AllocationFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vtscreen: allocation failed in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("vtscreen: allocation failed in %s", e.Op)
}

func (e *AllocationFailure) Unwrap() error { return e.Err }

// BoundsViolation is returned by public accessors that take an
// external index (e.g. Screen.Line) when that index is out of range.
// Internal mutating operations never return this; they clamp instead.
type BoundsViolation struct {
	Op          string
	Index, Size int
}

func (e *BoundsViolation) Error() string {
	return fmt.Sprintf("vtscreen: %s index %d out of range [0,%d)", e.Op, e.Index, e.Size)
}
