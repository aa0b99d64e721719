package draft

import "math"

// Axis identifies a mirror axis for [MirrorAcrossAxis].
type Axis uint8

const (
	// AxisX mirrors across a horizontal line y = value.
	AxisX Axis = iota

	// AxisY mirrors across a vertical line x = value.
	AxisY
)

// TranslatePoint returns p moved by (dx, dy).
func TranslatePoint(p Point, dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// RotatePoint returns p rotated by angle radians about center.
func RotatePoint(p, center Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	d := p.Sub(center)
	return Point{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// ScalePoint returns p scaled about center by (sx, sy).
func ScalePoint(p, center Point, sx, sy float64) Point {
	return Point{
		X: center.X + (p.X-center.X)*sx,
		Y: center.Y + (p.Y-center.Y)*sy,
	}
}

// UniformScalePoint returns p scaled about center by s in both axes.
func UniformScalePoint(p, center Point, s float64) Point {
	return ScalePoint(p, center, s, s)
}

// MirrorAcrossLine reflects p across the infinite line through lineStart
// and lineEnd: project p onto the line, then double the perpendicular
// offset. A zero-length line returns p unchanged.
func MirrorAcrossLine(p, lineStart, lineEnd Point) Point {
	d := lineEnd.Sub(lineStart)
	lenSq := d.LengthSquared()
	if lenSq < Epsilon {
		return p
	}
	t := p.Sub(lineStart).Dot(d) / lenSq
	proj := lineStart.Add(d.Mul(t))
	return proj.Mul(2).Sub(p)
}

// MirrorAcrossPoint reflects p through center (central symmetry).
// The operation is an involution: applying it twice returns p exactly.
func MirrorAcrossPoint(p, center Point) Point {
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}

// MirrorAcrossAxis reflects p across the axis-aligned line at axisValue.
func MirrorAcrossAxis(p Point, axisValue float64, axis Axis) Point {
	if axis == AxisX {
		return Point{X: p.X, Y: 2*axisValue - p.Y}
	}
	return Point{X: 2*axisValue - p.X, Y: p.Y}
}
