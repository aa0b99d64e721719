package draft

import "math"

// FilletResult holds the output of a successful fillet: the tangent arc
// and the two input lines trimmed back to the tangent points. Inputs are
// never mutated; callers decide whether to keep the originals or replace
// them with the trimmed versions.
type FilletResult struct {
	// Arc is the tangent arc rounding the corner.
	Arc Arc

	// Trimmed are the two input lines with their corner-side endpoints
	// moved to the tangent points, in input order.
	Trimmed [2]Line

	// Tangents are the points where the arc touches each line, in input
	// order. Each lies at distance radius from the arc center.
	Tangents [2]Point
}

// ChamferResult holds the output of a successful chamfer: the bevel line
// and the two input lines trimmed back to the trim points.
type ChamferResult struct {
	// Bevel is the straight line replacing the corner.
	Bevel Line

	// Trimmed are the two input lines with their corner-side endpoints
	// moved to the trim points, in input order.
	Trimmed [2]Line
}

// corner locates the shared corner of two lines. The endpoint pair with
// minimum mutual distance identifies which ends adjoin the corner; this
// is a heuristic, not an intersection test, and deliberately tolerates
// lines that do not exactly meet. The corner point itself is the
// intersection of the infinite lines.
type corner struct {
	point      Point // infinite-line intersection
	farA, farB Point // endpoints away from the corner
	dirA, dirB Point // unit directions from the corner toward far ends
	angle      float64
}

func findCorner(a, b Line, op string) (corner, error) {
	x, ok := LineIntersection(a.Start, a.End, b.Start, b.End)
	if !ok {
		return corner{}, degenerateErr(op, "lines are parallel or non-intersecting")
	}

	// Nearest endpoint pair picks the corner side of each line.
	nearA, farA := a.Start, a.End
	nearB, farB := b.Start, b.End
	best := math.Inf(1)
	for _, pa := range [2]Point{a.Start, a.End} {
		for _, pb := range [2]Point{b.Start, b.End} {
			if d := pa.Distance(pb); d < best {
				best = d
				nearA, nearB = pa, pb
			}
		}
	}
	if nearA == a.End {
		farA = a.Start
	}
	if nearB == b.End {
		farB = b.Start
	}

	dirA := farA.Sub(x).Normalize()
	dirB := farB.Sub(x).Normalize()
	cos := math.Max(-1, math.Min(1, dirA.Dot(dirB)))
	angle := math.Acos(cos)
	if angle < Epsilon || math.Pi-angle < Epsilon {
		return corner{}, degenerateErr(op, "lines are parallel or non-intersecting")
	}
	return corner{point: x, farA: farA, farB: farB, dirA: dirA, dirB: dirB, angle: angle}, nil
}

// trimToward rebuilds a line from the corner-side trim point out to the
// far endpoint, preserving the original style.
func trimToward(orig Line, trimPt, far Point, op string) (Line, error) {
	l, err := NewLine(trimPt, far)
	if err != nil {
		return Line{}, constraintErr(op, "trim leaves a zero-length line")
	}
	l.Style = orig.Style
	return l, nil
}

// Fillet constructs a tangent arc of the given radius rounding the corner
// between two lines, and returns the lines trimmed to the tangent points.
//
// The tangent distance from the corner along each line is
// radius / tan(angle/2). The operation fails, leaving both inputs
// untouched, when the lines are parallel or when either tangent point
// would fall outside its source segment (radius too large).
func Fillet(a, b Line, radius float64) (FilletResult, error) {
	const op = "fillet"
	if radius <= 0 {
		return FilletResult{}, degenerateErr(op, "non-positive radius")
	}
	c, err := findCorner(a, b, op)
	if err != nil {
		return FilletResult{}, err
	}

	tangentDist := radius / math.Tan(c.angle/2)
	lenA := c.point.Distance(c.farA)
	lenB := c.point.Distance(c.farB)
	if tangentDist > lenA-LineTolerance || tangentDist > lenB-LineTolerance {
		return FilletResult{}, constraintErr(op, "radius too large for segment length")
	}

	ta := c.point.Add(c.dirA.Mul(tangentDist))
	tb := c.point.Add(c.dirB.Mul(tangentDist))

	// The center sits on the angle bisector, at distance radius from both
	// tangent points along the corner-side perpendiculars.
	bisector := c.dirA.Add(c.dirB).Normalize()
	center := c.point.Add(bisector.Mul(radius / math.Sin(c.angle/2)))

	startAngle := Angle(center, ta)
	endAngle := Angle(center, tb)
	// Sweep the short way between the tangent points.
	ccw := NormalizeAngle(endAngle-startAngle) <= math.Pi

	arc, err := NewArc(center, radius, startAngle, endAngle, ccw)
	if err != nil {
		return FilletResult{}, err
	}
	arc.Style = a.Style

	trimA, err := trimToward(a, ta, c.farA, op)
	if err != nil {
		return FilletResult{}, err
	}
	trimB, err := trimToward(b, tb, c.farB, op)
	if err != nil {
		return FilletResult{}, err
	}

	Logger().Debug("fillet constructed",
		"radius", radius, "center_x", center.X, "center_y", center.Y)

	return FilletResult{
		Arc:      arc,
		Trimmed:  [2]Line{trimA, trimB},
		Tangents: [2]Point{ta, tb},
	}, nil
}

// Chamfer constructs a straight bevel between two lines, trimming each by
// its configured distance from the corner. Unlike Fillet, the trim points
// are placed directly at the offset distances with no angle-dependent
// math. It fails, leaving both inputs untouched, when the lines are
// parallel or a trim distance exceeds its segment.
func Chamfer(a, b Line, distA, distB float64) (ChamferResult, error) {
	const op = "chamfer"
	if distA <= 0 || distB <= 0 {
		return ChamferResult{}, degenerateErr(op, "non-positive trim distance")
	}
	c, err := findCorner(a, b, op)
	if err != nil {
		return ChamferResult{}, err
	}

	lenA := c.point.Distance(c.farA)
	lenB := c.point.Distance(c.farB)
	if distA > lenA-LineTolerance || distB > lenB-LineTolerance {
		return ChamferResult{}, constraintErr(op, "trim distance too large for segment length")
	}

	ta := c.point.Add(c.dirA.Mul(distA))
	tb := c.point.Add(c.dirB.Mul(distB))

	bevel, err := NewLine(ta, tb)
	if err != nil {
		return ChamferResult{}, degenerateErr(op, "trim points coincide")
	}
	bevel.Style = a.Style

	trimA, err := trimToward(a, ta, c.farA, op)
	if err != nil {
		return ChamferResult{}, err
	}
	trimB, err := trimToward(b, tb, c.farB, op)
	if err != nil {
		return ChamferResult{}, err
	}

	return ChamferResult{
		Bevel:   bevel,
		Trimmed: [2]Line{trimA, trimB},
	}, nil
}

// FilletPolyline rounds every corner of a polyline with the given radius,
// returning the replacement entities: trimmed edges interleaved with
// fillet arcs. Closed polylines include the wrap-around corner; open
// polylines round interior corners only.
//
// A corner where the fillet fails (radius too large, collinear edges)
// keeps its original vertex unmodified instead of aborting the whole
// operation.
func FilletPolyline(p Polyline, radius float64) ([]Entity, error) {
	return roundPolyline(p, func(a, b Line) (Entity, [2]Line, error) {
		res, err := Fillet(a, b, radius)
		if err != nil {
			return nil, [2]Line{}, err
		}
		return res.Arc, res.Trimmed, nil
	})
}

// ChamferPolyline bevels every corner of a polyline with the given trim
// distance, with the same per-corner fallback behavior as FilletPolyline.
func ChamferPolyline(p Polyline, dist float64) ([]Entity, error) {
	return roundPolyline(p, func(a, b Line) (Entity, [2]Line, error) {
		res, err := Chamfer(a, b, dist, dist)
		if err != nil {
			return nil, [2]Line{}, err
		}
		return res.Bevel, res.Trimmed, nil
	})
}

// roundPolyline applies a pairwise corner construction to every
// consecutive edge pair of the polyline.
func roundPolyline(p Polyline, round func(a, b Line) (Entity, [2]Line, error)) ([]Entity, error) {
	edges := p.Edges()
	if len(edges) < 2 {
		return nil, degenerateErr("round polyline", "polyline has fewer than two edges")
	}

	starts := make([]Point, len(edges))
	ends := make([]Point, len(edges))
	for i, e := range edges {
		starts[i], ends[i] = e[0], e[1]
	}

	// Corner i joins edge i-1 to edge i. Closed polylines also join the
	// last edge back to the first.
	firstCorner := 1
	cornerCount := len(edges) - 1
	if p.Closed {
		firstCorner = 0
		cornerCount = len(edges)
	}

	var joins []Entity
	joined := make([]bool, len(edges)+1)
	for k := 0; k < cornerCount; k++ {
		i := firstCorner + k
		prev := (i - 1 + len(edges)) % len(edges)
		cur := i % len(edges)

		la, errA := NewLine(starts[prev], ends[prev])
		lb, errB := NewLine(starts[cur], ends[cur])
		if errA != nil || errB != nil {
			continue
		}
		la.Style, lb.Style = p.Style, p.Style

		join, trimmed, err := round(la, lb)
		if err != nil {
			// Keep this corner's original vertex.
			Logger().Warn("polyline corner kept", "corner", cur, "reason", err.Error())
			continue
		}
		ends[prev] = trimmed[0].Start
		starts[cur] = trimmed[1].Start
		joins = append(joins, join)
		joined[cur] = true
	}

	result := make([]Entity, 0, len(edges)+len(joins))
	ji := 0
	for i := range edges {
		if joined[i] && ji < len(joins) {
			result = append(result, joins[ji])
			ji++
		}
		l, err := NewLine(starts[i], ends[i])
		if err != nil {
			continue
		}
		l.Style = p.Style
		result = append(result, l)
	}
	// Wrap-around join for closed polylines sits after the last edge.
	for ; ji < len(joins); ji++ {
		result = append(result, joins[ji])
	}
	return result, nil
}
