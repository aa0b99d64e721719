package measure

import (
	"math"
	"time"

	draft "github.com/draftkit/draft2d"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Kind identifies what a probe measurement reports.
type Kind uint8

const (
	// Distance measures between two points.
	Distance Kind = iota

	// Angle measures at a vertex between two rays. The vertex is the
	// second clicked point, between the ray points.
	Angle

	// Area measures an at-least-three-point polygon via the shoelace
	// formula (absolute value).
	Area

	// Perimeter measures the closed-loop edge sum of a polygon.
	Perimeter

	// Radius measures from a center point to an edge point.
	Radius

	// Coordinates reports a single point's position.
	Coordinates
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Distance:
		return "distance"
	case Angle:
		return "angle"
	case Area:
		return "area"
	case Perimeter:
		return "perimeter"
	case Radius:
		return "radius"
	case Coordinates:
		return "coordinates"
	default:
		return "unknown"
	}
}

// fixedPointCount returns the number of points after which a kind
// auto-completes, or 0 for the open-ended polygon kinds (Area,
// Perimeter), which complete explicitly with at least minPolygonPoints.
func (k Kind) fixedPointCount() int {
	switch k {
	case Distance, Radius:
		return 2
	case Angle:
		return 3
	case Coordinates:
		return 1
	default:
		return 0
	}
}

const minPolygonPoints = 3

// Measurement is one completed probe reading.
type Measurement struct {
	Kind        string    `yaml:"kind"`
	Value       float64   `yaml:"value"`
	Unit        string    `yaml:"unit"`
	Description string    `yaml:"description"`
	At          time.Time `yaml:"at"`
}

// Probe computes measurements and keeps their history. It is read-only
// with respect to entities: nothing it does reaches a store.
type Probe struct {
	precision int
	unit      string
	printer   *message.Printer
	now       func() time.Time

	kind    Kind
	points  []draft.Point
	history []Measurement
}

// Option configures a Probe during creation.
type Option func(*Probe)

// WithPrecision sets the number of decimals in formatted values (0-4).
// Out-of-range values are clamped.
func WithPrecision(p int) Option {
	return func(pr *Probe) {
		if p < 0 {
			p = 0
		}
		if p > 4 {
			p = 4
		}
		pr.precision = p
	}
}

// WithUnit sets the unit suffix for non-angular values.
func WithUnit(unit string) Option {
	return func(pr *Probe) { pr.unit = unit }
}

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(pr *Probe) { pr.now = now }
}

// NewProbe creates a measurement probe. Defaults: 2 decimals, "mm",
// distance kind.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		precision: 2,
		unit:      "mm",
		printer:   message.NewPrinter(language.English),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Begin starts a new measurement of the given kind, discarding any
// points collected so far.
func (p *Probe) Begin(kind Kind) {
	p.kind = kind
	p.points = nil
}

// Kind returns the kind currently being measured.
func (p *Probe) Kind() Kind { return p.kind }

// Points returns the points collected so far.
func (p *Probe) Points() []draft.Point {
	return append([]draft.Point(nil), p.points...)
}

// AddPoint appends a clicked point. Kinds with a fixed point count
// complete automatically and return the finished measurement; the
// polygon kinds keep collecting until Complete is called.
func (p *Probe) AddPoint(pt draft.Point) (Measurement, bool) {
	p.points = append(p.points, pt)
	if n := p.kind.fixedPointCount(); n > 0 && len(p.points) >= n {
		return p.complete()
	}
	return Measurement{}, false
}

// Complete finishes an open-ended (Area, Perimeter) measurement. It
// reports false while fewer than three points are collected.
func (p *Probe) Complete() (Measurement, bool) {
	if p.kind.fixedPointCount() > 0 {
		if len(p.points) < p.kind.fixedPointCount() {
			return Measurement{}, false
		}
		return p.complete()
	}
	if len(p.points) < minPolygonPoints {
		return Measurement{}, false
	}
	return p.complete()
}

// Cancel discards the in-progress points without recording anything.
func (p *Probe) Cancel() {
	p.points = nil
}

// complete computes the measurement from the collected points, records
// it and resets the point buffer.
func (p *Probe) complete() (Measurement, bool) {
	pts := p.points
	var m Measurement
	switch p.kind {
	case Distance:
		m = p.record(Distance, pts[0].Distance(pts[1]), p.unit, "Distance")
	case Angle:
		// Vertex is the second clicked point.
		deg := draft.ToDegrees(draft.AngleBetween(pts[1], pts[0], pts[2]), draft.Radians)
		m = p.record(Angle, deg, "°", "Angle")
	case Area:
		m = p.record(Area, math.Abs(draft.PolygonArea(pts)), p.areaUnit(), "Area")
	case Perimeter:
		m = p.record(Perimeter, draft.PolygonPerimeter(pts), p.unit, "Perimeter")
	case Radius:
		m = p.record(Radius, pts[0].Distance(pts[1]), p.unit, "Radius")
	case Coordinates:
		m = Measurement{
			Kind: Coordinates.String(),
			Unit: p.unit,
			Description: p.printer.Sprintf("Position: X=%.*f, Y=%.*f %s",
				p.precision, pts[0].X, p.precision, pts[0].Y, p.unit),
			At: p.now(),
		}
		p.history = append(p.history, m)
	}
	p.points = nil
	return m, true
}

// record formats, timestamps and appends one measurement.
func (p *Probe) record(kind Kind, value float64, unit, label string) Measurement {
	m := Measurement{
		Kind:        kind.String(),
		Value:       value,
		Unit:        unit,
		Description: p.format(label, value, unit),
		At:          p.now(),
	}
	p.history = append(p.history, m)
	draft.Logger().Debug("measurement recorded", "kind", m.Kind, "value", m.Value)
	return m
}

func (p *Probe) format(label string, value float64, unit string) string {
	if unit == "°" {
		return p.printer.Sprintf("%s: %.*f°", label, p.precision, value)
	}
	if unit == "" {
		return p.printer.Sprintf("%s: %.*f", label, p.precision, value)
	}
	return p.printer.Sprintf("%s: %.*f %s", label, p.precision, value, unit)
}

// areaUnit returns the squared unit suffix, e.g. "mm²".
func (p *Probe) areaUnit() string {
	if p.unit == "" {
		return ""
	}
	return p.unit + "²"
}

// MeasureLine records the length of a line entity.
func (p *Probe) MeasureLine(l draft.Line) Measurement {
	return p.record(Distance, l.Length(), p.unit, "Length")
}

// MeasureCircle records a circle's area and circumference, returning
// both measurements in that order.
func (p *Probe) MeasureCircle(c draft.Circle) []Measurement {
	return []Measurement{
		p.record(Area, c.Area(), p.areaUnit(), "Area"),
		p.record(Perimeter, c.Circumference(), p.unit, "Circumference"),
	}
}

// MeasureRectangle records the area and perimeter of the axis-aligned
// rectangle spanned by two opposite corners, returning both measurements
// in that order.
func (p *Probe) MeasureRectangle(a, b draft.Point) []Measurement {
	w := math.Abs(b.X - a.X)
	h := math.Abs(b.Y - a.Y)
	return []Measurement{
		p.record(Area, w*h, p.areaUnit(), "Area"),
		p.record(Perimeter, 2*(w+h), p.unit, "Perimeter"),
	}
}

// MeasurePolyline records the total edge length of a polyline entity.
func (p *Probe) MeasurePolyline(pl draft.Polyline) Measurement {
	return p.record(Perimeter, pl.Length(), p.unit, "Length")
}

// History returns the completed measurements in order.
func (p *Probe) History() []Measurement {
	return append([]Measurement(nil), p.history...)
}

// ClearHistory discards all recorded measurements.
func (p *Probe) ClearHistory() {
	p.history = nil
}

// Export serializes the history as YAML.
func (p *Probe) Export() ([]byte, error) {
	return yaml.Marshal(p.history)
}
