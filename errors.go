package draft

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the kernel and constructors
// can produce. Wrap-and-check with errors.Is.
var (
	// ErrDegenerateGeometry covers zero-length vectors, parallel or
	// non-intersecting lines and non-positive resulting radii.
	ErrDegenerateGeometry = errors.New("draft: degenerate geometry")

	// ErrConstraintViolated covers inputs that are individually valid but
	// jointly impossible, such as a fillet tangent point falling outside
	// its source segment.
	ErrConstraintViolated = errors.New("draft: constraint violated")

	// ErrInvalidSelection covers selection-based operations referencing an
	// entity of the wrong kind or one that no longer exists.
	ErrInvalidSelection = errors.New("draft: invalid selection")
)

// GeometryError describes a failed geometric operation. The operation's
// inputs are guaranteed untouched when one is returned.
type GeometryError struct {
	// Op is the operation that failed, e.g. "fillet" or "offset circle".
	Op string

	// Reason is a human-readable explanation suitable for a command prompt.
	Reason string

	// Err is the sentinel classifying the failure.
	Err error
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("draft: %s: %s", e.Op, e.Reason)
}

// Unwrap returns the classifying sentinel error.
func (e *GeometryError) Unwrap() error {
	return e.Err
}

func degenerateErr(op, reason string) error {
	return &GeometryError{Op: op, Reason: reason, Err: ErrDegenerateGeometry}
}

func constraintErr(op, reason string) error {
	return &GeometryError{Op: op, Reason: reason, Err: ErrConstraintViolated}
}
