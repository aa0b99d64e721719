package draft

import "math"

// Epsilon is the tolerance used for floating-point comparisons in the
// geometry kernel: near-zero determinants, coincident points, tangency.
const Epsilon = 1e-9

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// Angle returns the direction from a to b in radians via atan2.
// The result is in (-π, π] and is direction-dependent: Angle(a, b) and
// Angle(b, a) differ by π. It is not wrapped to [0, 2π); callers that need
// a wrapped angle use [NormalizeAngle].
func Angle(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// PointFromPolar returns the point at the given distance and angle
// (radians) from origin.
func PointFromPolar(origin Point, distance, angle float64) Point {
	return Point{
		X: origin.X + distance*math.Cos(angle),
		Y: origin.Y + distance*math.Sin(angle),
	}
}

// PointInPolygon reports whether p lies inside the polygon using the
// ray-casting odd-even rule. Polygons with fewer than 3 vertices contain
// nothing.
//
// Boundary behavior: edges are treated half-open, so a point exactly on an
// edge counts as inside for the edge whose interior is to its left and
// outside otherwise. This is consistent for adjacent polygons (a point on a
// shared edge belongs to exactly one of them) but callers must not rely on
// any particular answer for boundary points.
func PointInPolygon(p Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// DistanceToSegment returns the shortest distance from p to the segment
// [segStart, segEnd]. The projection parameter is clamped to [0, 1], so
// points projecting beyond either end measure to the nearest endpoint.
// A zero-length segment measures to its single point.
func DistanceToSegment(p, segStart, segEnd Point) float64 {
	d := segEnd.Sub(segStart)
	lenSq := d.LengthSquared()
	if lenSq < Epsilon {
		return p.Distance(segStart)
	}
	t := p.Sub(segStart).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(segStart.Add(d.Mul(t)))
}

// ProjectOntoSegment returns the point on segment [segStart, segEnd]
// nearest to p, with the clamped projection parameter t in [0, 1].
func ProjectOntoSegment(p, segStart, segEnd Point) (Point, float64) {
	d := segEnd.Sub(segStart)
	lenSq := d.LengthSquared()
	if lenSq < Epsilon {
		return segStart, 0
	}
	t := p.Sub(segStart).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return segStart.Add(d.Mul(t)), t
}

// SegmentIntersection returns the intersection of segments [aStart, aEnd]
// and [bStart, bEnd]. It solves the 2x2 linear system from the parametric
// segment equations and reports false when the determinant is near zero
// (parallel, including collinear) or when either intersection parameter
// falls outside [0, 1].
func SegmentIntersection(aStart, aEnd, bStart, bEnd Point) (Point, bool) {
	da := aEnd.Sub(aStart)
	db := bEnd.Sub(bStart)
	det := da.Cross(db)
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}
	diff := bStart.Sub(aStart)
	t := diff.Cross(db) / det
	u := diff.Cross(da) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return aStart.Add(da.Mul(t)), true
}

// LineIntersection returns the intersection of the infinite lines through
// [aStart, aEnd] and [bStart, bEnd], reporting false for parallel lines.
// Unlike [SegmentIntersection] the result may lie outside either segment;
// the offset engine's edge rejoin and corner construction need this.
func LineIntersection(aStart, aEnd, bStart, bEnd Point) (Point, bool) {
	da := aEnd.Sub(aStart)
	db := bEnd.Sub(bStart)
	det := da.Cross(db)
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}
	t := bStart.Sub(aStart).Cross(db) / det
	return aStart.Add(da.Mul(t)), true
}

// TangentPoints returns the two points where lines through p touch the
// circle tangentially. It reports false when p lies inside or on the
// circle, where no tangent exists.
func TangentPoints(p, center Point, radius float64) (Point, Point, bool) {
	d := p.Distance(center)
	if d <= radius {
		return Point{}, Point{}, false
	}
	base := Angle(center, p)
	offset := math.Acos(radius / d)
	t1 := PointFromPolar(center, radius, base+offset)
	t2 := PointFromPolar(center, radius, base-offset)
	return t1, t2, true
}

// SegmentCircleIntersection returns the points where segment
// [segStart, segEnd] crosses the circle, filtered to points within the
// segment. The result has 0, 1 (tangent or single crossing) or 2 points.
func SegmentCircleIntersection(segStart, segEnd, center Point, radius float64) []Point {
	d := segEnd.Sub(segStart)
	f := segStart.Sub(center)

	a := d.Dot(d)
	if a < Epsilon {
		return nil
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius

	disc := b*b - 4*a*c
	if disc < -Epsilon {
		return nil
	}
	if disc < 0 {
		disc = 0
	}
	sqrtDisc := math.Sqrt(disc)

	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	var pts []Point
	if t1 >= 0 && t1 <= 1 {
		pts = append(pts, segStart.Add(d.Mul(t1)))
	}
	// Tangent case: the two roots coincide, report one point.
	if t2 >= 0 && t2 <= 1 && math.Abs(t2-t1) > Epsilon {
		pts = append(pts, segStart.Add(d.Mul(t2)))
	}
	return pts
}

// PolygonArea returns the signed area of the polygon via the shoelace
// formula. In the package's y-down screen frame the sign is positive
// for clockwise winding; callers wanting the geometric area take the
// absolute value. Polygons with fewer than 3 vertices have zero area.
func PolygonArea(polygon []Point) float64 {
	if len(polygon) < 3 {
		return 0
	}
	var sum float64
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		sum += polygon[j].Cross(polygon[i])
		j = i
	}
	return sum / 2
}

// PolygonPerimeter returns the closed-loop edge sum of the polygon,
// including the wrap-around edge from the last vertex back to the first.
func PolygonPerimeter(polygon []Point) float64 {
	if len(polygon) < 2 {
		return 0
	}
	var sum float64
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		sum += polygon[j].Distance(polygon[i])
		j = i
	}
	return sum
}
