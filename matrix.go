package draft

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation matrix.
func Translation(dx, dy float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Rotation creates a rotation matrix about the origin (angle in radians).
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotationAbout creates a rotation matrix about an arbitrary center,
// composed as translate(center) * rotate * translate(-center).
func RotationAbout(center Point, angle float64) Matrix {
	return Composite(
		Translation(-center.X, -center.Y),
		Rotation(angle),
		Translation(center.X, center.Y),
	)
}

// Scaling creates a scaling matrix about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// ScalingAbout creates a scaling matrix about an arbitrary center.
func ScalingAbout(center Point, sx, sy float64) Matrix {
	return Composite(
		Translation(-center.X, -center.Y),
		Scaling(sx, sy),
		Translation(center.X, center.Y),
	)
}

// LineMirror creates a reflection matrix across the line through
// lineStart and lineEnd, derived from the line's unit direction via the
// standard reflection formula. A zero-length line yields the identity.
func LineMirror(lineStart, lineEnd Point) Matrix {
	d := lineEnd.Sub(lineStart).Normalize()
	if d.LengthSquared() == 0 {
		return Identity()
	}
	// Reflection about a line through the origin with unit direction d.
	refl := Matrix{
		A: d.X*d.X - d.Y*d.Y, B: 2 * d.X * d.Y, C: 0,
		D: 2 * d.X * d.Y, E: d.Y*d.Y - d.X*d.X, F: 0,
	}
	return Composite(
		Translation(-lineStart.X, -lineStart.Y),
		refl,
		Translation(lineStart.X, lineStart.Y),
	)
}

// Multiply multiplies two matrices (m * other), so the combined matrix
// applies other first and m second:
//
//	m.Multiply(other).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p))
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Composite folds the given matrices into one, applying them to a point in
// argument order (left to right), starting from the identity:
//
//	Composite(m1, m2).TransformPoint(p) == m2.TransformPoint(m1.TransformPoint(p))
//
// Composite() with no arguments returns the identity.
func Composite(ms ...Matrix) Matrix {
	result := Identity()
	for _, m := range ms {
		result = m.Multiply(result)
	}
	return result
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
