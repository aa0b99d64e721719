package draft

import (
	"errors"
	"testing"
)

func TestGeometryError(t *testing.T) {
	err := degenerateErr("offset circle", "resulting radius is not positive")

	if got := err.Error(); got != "draft: offset circle: resulting radius is not positive" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Error("degenerateErr does not unwrap to ErrDegenerateGeometry")
	}
	if errors.Is(err, ErrConstraintViolated) {
		t.Error("degenerateErr unwraps to the wrong sentinel")
	}

	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Fatal("errors.As failed to extract *GeometryError")
	}
	if gerr.Op != "offset circle" {
		t.Errorf("Op = %q", gerr.Op)
	}

	if !errors.Is(constraintErr("fillet", "radius too large"), ErrConstraintViolated) {
		t.Error("constraintErr does not unwrap to ErrConstraintViolated")
	}
}
