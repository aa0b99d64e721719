package surface

import "math"

// arcSegmentAngle is the angular step used when flattening arcs into
// line segments.
const arcSegmentAngle = math.Pi / 32

// Path represents a vector path for drawing operations.
//
// Paths are built from move/line/arc verbs and stored pre-flattened as
// polyline subpaths, which is all a preview surface needs. A Path is
// reusable: build once, draw many times, Reset to rebuild.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	subpaths []subpath
	curX     float64
	curY     float64
	started  bool
}

type subpath struct {
	// pts holds interleaved x, y coordinates.
	pts    []float64
	closed bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, subpath{pts: []float64{x, y}})
	p.curX, p.curY = x, y
	p.started = true
}

// LineTo adds a line from the current point to (x, y).
// If the path is empty, LineTo behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.started {
		p.MoveTo(x, y)
		return
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	sp.pts = append(sp.pts, x, y)
	p.curX, p.curY = x, y
}

// Arc adds a circular arc centered at (cx, cy) with the given radius,
// sweeping from startAngle to endAngle (radians) in the direction given
// by ccw. The arc is flattened into line segments; a line connects the
// current point to the arc start if the path is non-empty.
func (p *Path) Arc(cx, cy, radius, startAngle, endAngle float64, ccw bool) {
	sweep := math.Mod(endAngle-startAngle, 2*math.Pi)
	if ccw {
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	} else {
		if sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}
	steps := int(math.Ceil(math.Abs(sweep) / arcSegmentAngle))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 && !p.started {
			p.MoveTo(x, y)
			continue
		}
		p.LineTo(x, y)
	}
}

// Circle adds a full circle as a closed subpath.
func (p *Path) Circle(cx, cy, radius float64) {
	p.MoveTo(cx+radius, cy)
	p.Arc(cx, cy, radius, 0, 2*math.Pi, true)
	p.Close()
}

// Rect adds an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Close closes the current subpath by connecting to its start point.
func (p *Path) Close() {
	if !p.started {
		return
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	sp.closed = true
	if len(sp.pts) >= 2 {
		p.curX, p.curY = sp.pts[0], sp.pts[1]
	}
}

// Reset removes all elements from the path.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
	p.curX, p.curY = 0, 0
	p.started = false
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.subpaths) == 0
}

// dashed returns a copy of the path split into dash segments according
// to the pattern and offset. Patterns with no positive length return the
// path unchanged.
func (p *Path) dashed(pattern []float64, offset float64) *Path {
	var total float64
	for _, d := range pattern {
		if d > 0 {
			total += d
		}
	}
	if total <= 0 {
		return p
	}

	out := NewPath()
	for _, sp := range p.subpaths {
		pts := sp.pts
		if sp.closed && len(pts) >= 4 {
			pts = append(append([]float64{}, pts...), pts[0], pts[1])
		}
		dashSubpath(out, pts, pattern, offset)
	}
	return out
}

// dashSubpath walks a polyline accumulating arc length and alternating
// between pen-down (even pattern index) and pen-up segments.
func dashSubpath(out *Path, pts, pattern []float64, offset float64) {
	if len(pts) < 4 {
		return
	}
	idx := 0
	remaining := pattern[0]
	// Consume the starting offset.
	for offset > 0 {
		if offset >= remaining {
			offset -= remaining
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		} else {
			remaining -= offset
			offset = 0
		}
	}
	penDown := idx%2 == 0
	x0, y0 := pts[0], pts[1]
	if penDown {
		out.MoveTo(x0, y0)
	}

	for i := 2; i < len(pts); i += 2 {
		x1, y1 := pts[i], pts[i+1]
		segLen := math.Hypot(x1-x0, y1-y0)
		for segLen > 0 {
			if remaining > segLen {
				remaining -= segLen
				if penDown {
					out.LineTo(x1, y1)
				}
				x0, y0 = x1, y1
				segLen = 0
				continue
			}
			t := remaining / segLen
			mx := x0 + (x1-x0)*t
			my := y0 + (y1-y0)*t
			if penDown {
				out.LineTo(mx, my)
			} else {
				out.MoveTo(mx, my)
			}
			segLen -= remaining
			x0, y0 = mx, my
			x1, y1 = pts[i], pts[i+1]
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
			penDown = !penDown
		}
	}
}
