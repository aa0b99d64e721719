package draft

import "math"

// AngleUnit identifies the unit of an angle value supplied by a caller.
//
// Every function in this package takes and returns radians. Hosts that work
// in degrees convert explicitly at the boundary with [ToRadians] and
// [ToDegrees]; there is deliberately no magnitude-based unit guessing.
type AngleUnit uint8

const (
	// Radians is the native unit of the kernel.
	Radians AngleUnit = iota

	// Degrees is the conventional UI unit.
	Degrees
)

// String returns the unit name.
func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	default:
		return "unknown"
	}
}

// ToRadians converts v expressed in unit to radians.
func ToRadians(v float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return v * math.Pi / 180
	}
	return v
}

// ToDegrees converts v expressed in unit to degrees.
func ToDegrees(v float64, unit AngleUnit) float64 {
	if unit == Radians {
		return v * 180 / math.Pi
	}
	return v
}

// NormalizeAngle wraps an angle in radians to the range [0, 2π).
func NormalizeAngle(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}

// AngleBetween returns the angle at vertex subtended by the rays toward a
// and b, normalized to [0, 2π). The angle is measured counter-clockwise
// from the vertex→a ray to the vertex→b ray.
func AngleBetween(vertex, a, b Point) float64 {
	return NormalizeAngle(Angle(vertex, b) - Angle(vertex, a))
}
