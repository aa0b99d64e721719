package draft

import "math"

// LineTolerance is the minimum endpoint separation for a valid Line,
// in drawing-space units.
const LineTolerance = 1e-3

// EntityKind identifies the concrete type of an Entity.
type EntityKind uint8

const (
	// KindLine is a straight segment between two points.
	KindLine EntityKind = iota

	// KindArc is a circular arc.
	KindArc

	// KindCircle is a full circle.
	KindCircle

	// KindPolyline is an ordered point sequence, open or closed.
	KindPolyline

	// KindDimension is an annotation measuring other geometry.
	KindDimension
)

// String returns the kind name.
func (k EntityKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	case KindDimension:
		return "dimension"
	default:
		return "unknown"
	}
}

// Entity is a committed drawing primitive. Entities are immutable value
// types; once handed to the host's store the kernel retains no reference
// to them.
type Entity interface {
	Kind() EntityKind
}

// Line is a straight segment. Invariant: Start and End are separated by
// at least LineTolerance; NewLine enforces this.
type Line struct {
	Start, End Point
	Style      Style
}

// NewLine creates a Line, rejecting coincident endpoints.
func NewLine(start, end Point) (Line, error) {
	if start.Near(end, LineTolerance) {
		return Line{}, degenerateErr("new line", "zero-length line")
	}
	return Line{Start: start, End: end, Style: DefaultStyle()}, nil
}

// Kind implements Entity.
func (l Line) Kind() EntityKind { return KindLine }

// Length returns the segment length.
func (l Line) Length() float64 { return l.Start.Distance(l.End) }

// Angle returns the direction from Start to End in radians.
func (l Line) Angle() float64 { return Angle(l.Start, l.End) }

// Midpoint returns the segment midpoint.
func (l Line) Midpoint() Point { return Midpoint(l.Start, l.End) }

// Direction returns the unit vector from Start toward End.
func (l Line) Direction() Point { return l.End.Sub(l.Start).Normalize() }

// Arc is a circular arc. Invariant: Radius > 0.
// Angles are in radians; the arc sweeps from StartAngle to EndAngle in
// the direction given by Counterclockwise.
type Arc struct {
	Center           Point
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
	Style            Style
}

// NewArc creates an Arc, rejecting non-positive radii.
func NewArc(center Point, radius, startAngle, endAngle float64, ccw bool) (Arc, error) {
	if radius <= 0 {
		return Arc{}, degenerateErr("new arc", "non-positive radius")
	}
	return Arc{
		Center:           center,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		Counterclockwise: ccw,
		Style:            DefaultStyle(),
	}, nil
}

// Kind implements Entity.
func (a Arc) Kind() EntityKind { return KindArc }

// SweepAngle returns the swept angle in radians, in [0, 2π), measured in
// the arc's own direction.
func (a Arc) SweepAngle() float64 {
	if a.Counterclockwise {
		return NormalizeAngle(a.EndAngle - a.StartAngle)
	}
	return NormalizeAngle(a.StartAngle - a.EndAngle)
}

// Length returns the arc length.
func (a Arc) Length() float64 { return a.Radius * a.SweepAngle() }

// StartPoint returns the point where the arc begins.
func (a Arc) StartPoint() Point { return PointFromPolar(a.Center, a.Radius, a.StartAngle) }

// EndPoint returns the point where the arc ends.
func (a Arc) EndPoint() Point { return PointFromPolar(a.Center, a.Radius, a.EndAngle) }

// Circle is a full circle. Invariant: Radius > 0.
type Circle struct {
	Center Point
	Radius float64
	Style  Style
}

// NewCircle creates a Circle, rejecting non-positive radii.
func NewCircle(center Point, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, degenerateErr("new circle", "non-positive radius")
	}
	return Circle{Center: center, Radius: radius, Style: DefaultStyle()}, nil
}

// Kind implements Entity.
func (c Circle) Kind() EntityKind { return KindCircle }

// Area returns the enclosed area.
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Circumference returns the circle's perimeter.
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.Radius }

// Polyline is an ordered sequence of at least two points, optionally
// closed into a loop.
type Polyline struct {
	Points []Point
	Closed bool
	Style  Style
}

// NewPolyline creates a Polyline, rejecting sequences of fewer than two
// points. The point slice is copied.
func NewPolyline(points []Point, closed bool) (Polyline, error) {
	if len(points) < 2 {
		return Polyline{}, degenerateErr("new polyline", "fewer than two points")
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return Polyline{Points: pts, Closed: closed, Style: DefaultStyle()}, nil
}

// Kind implements Entity.
func (p Polyline) Kind() EntityKind { return KindPolyline }

// Length returns the total edge length, including the closing edge for
// closed polylines.
func (p Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(p.Points); i++ {
		sum += p.Points[i-1].Distance(p.Points[i])
	}
	if p.Closed && len(p.Points) > 2 {
		sum += p.Points[len(p.Points)-1].Distance(p.Points[0])
	}
	return sum
}

// Edges returns the polyline's edges as (start, end) pairs, including the
// wrap-around edge when closed.
func (p Polyline) Edges() [][2]Point {
	if len(p.Points) < 2 {
		return nil
	}
	n := len(p.Points) - 1
	if p.Closed {
		n = len(p.Points)
	}
	edges := make([][2]Point, 0, n)
	for i := 1; i < len(p.Points); i++ {
		edges = append(edges, [2]Point{p.Points[i-1], p.Points[i]})
	}
	if p.Closed {
		edges = append(edges, [2]Point{p.Points[len(p.Points)-1], p.Points[0]})
	}
	return edges
}

// DimensionKind identifies what a Dimension measures.
type DimensionKind uint8

const (
	// Linear measures the distance between two points.
	Linear DimensionKind = iota

	// Angular measures the angle at a vertex between two rays.
	Angular

	// Radial measures a radius from center to edge.
	Radial

	// Diametrical measures a diameter (twice the radial distance).
	Diametrical
)

// String returns the dimension kind name.
func (k DimensionKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Angular:
		return "angular"
	case Radial:
		return "radial"
	case Diametrical:
		return "diametrical"
	default:
		return "unknown"
	}
}

// PointCount returns the number of definition points the kind requires:
// 3 for Linear and Angular (the third positions the dimension line), 2
// for Radial and Diametrical.
func (k DimensionKind) PointCount() int {
	if k == Linear || k == Angular {
		return 3
	}
	return 2
}

// Dimension is an annotation measuring other geometry.
//
// Points holds the definition points in order. For Linear the first two
// are the measured endpoints and the third offsets the dimension line;
// for Angular the first is the vertex and the next two lie on the rays;
// for Radial and Diametrical the first is the center and the second a
// point on the edge.
type Dimension struct {
	Type              DimensionKind
	Points            []Point
	ExtensionDistance float64
	OffsetDistance    float64

	// Text overrides the computed label when non-empty.
	Text string

	Style Style
}

// NewDimension creates a Dimension, validating the point count for the
// kind. The point slice is copied.
func NewDimension(kind DimensionKind, points []Point) (Dimension, error) {
	if len(points) < kind.PointCount() {
		return Dimension{}, degenerateErr("new dimension",
			"insufficient points for "+kind.String()+" dimension")
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return Dimension{Type: kind, Points: pts, Style: DefaultStyle()}, nil
}

// Kind implements Entity.
func (d Dimension) Kind() EntityKind { return KindDimension }

// Value returns the measured value in drawing-space units, or degrees for
// Angular dimensions. It reports false when the dimension holds fewer
// points than its kind requires.
func (d Dimension) Value() (float64, bool) {
	if len(d.Points) < d.Type.PointCount() {
		return 0, false
	}
	switch d.Type {
	case Linear:
		return d.Points[0].Distance(d.Points[1]), true
	case Angular:
		return ToDegrees(AngleBetween(d.Points[0], d.Points[1], d.Points[2]), Radians), true
	case Radial:
		return d.Points[0].Distance(d.Points[1]), true
	case Diametrical:
		return 2 * d.Points[0].Distance(d.Points[1]), true
	default:
		return 0, false
	}
}
