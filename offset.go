package draft

// Offset engine: parallel copies of lines, polylines, circles and arcs at
// signed distances.
//
// Sign convention: a positive distance offsets a line to the left of its
// start→end direction (the counter-clockwise perpendicular), and grows
// the radius of circles and arcs. Negative distances offset the other
// way, or shrink the radius.

// OffsetLine returns a copy of the line translated perpendicular to its
// direction by the signed distance.
func OffsetLine(l Line, distance float64) (Line, error) {
	normal := l.Direction().Perp().Mul(distance)
	out, err := NewLine(l.Start.Add(normal), l.End.Add(normal))
	if err != nil {
		return Line{}, err
	}
	out.Style = l.Style
	return out, nil
}

// OffsetCircle returns a copy of the circle with its radius grown by the
// signed distance. It fails when the resulting radius is not positive.
func OffsetCircle(c Circle, distance float64) (Circle, error) {
	r := c.Radius + distance
	if r <= 0 {
		return Circle{}, degenerateErr("offset circle", "resulting radius is not positive")
	}
	out := c
	out.Radius = r
	return out, nil
}

// OffsetArc returns a copy of the arc with its radius grown by the signed
// distance. It fails when the resulting radius is not positive.
func OffsetArc(a Arc, distance float64) (Arc, error) {
	r := a.Radius + distance
	if r <= 0 {
		return Arc{}, degenerateErr("offset arc", "resulting radius is not positive")
	}
	out := a
	out.Radius = r
	return out, nil
}

// OffsetPolyline offsets each edge of the polyline independently by the
// signed distance and rejoins adjacent offset edges at the intersection
// of their infinite lines. Collinear neighbors, where no intersection
// exists, join at the shared offset point. Closed polylines also rejoin
// the wrap-around corner.
func OffsetPolyline(p Polyline, distance float64) (Polyline, error) {
	const op = "offset polyline"
	edges := p.Edges()
	if len(edges) == 0 {
		return Polyline{}, degenerateErr(op, "polyline has no edges")
	}

	// Offset every edge, skipping degenerate (near zero-length) ones.
	type seg struct{ start, end Point }
	offs := make([]seg, 0, len(edges))
	for _, e := range edges {
		l, err := NewLine(e[0], e[1])
		if err != nil {
			continue
		}
		ol, err := OffsetLine(l, distance)
		if err != nil {
			continue
		}
		offs = append(offs, seg{ol.Start, ol.End})
	}
	if len(offs) == 0 {
		return Polyline{}, degenerateErr(op, "no offsettable edges")
	}

	join := func(a, b seg) Point {
		if x, ok := LineIntersection(a.start, a.end, b.start, b.end); ok {
			return x
		}
		// Collinear neighbors: keep the shared offset point.
		return a.end
	}

	var pts []Point
	if p.Closed {
		pts = make([]Point, 0, len(offs))
		for i := range offs {
			prev := (i - 1 + len(offs)) % len(offs)
			pts = append(pts, join(offs[prev], offs[i]))
		}
	} else {
		pts = make([]Point, 0, len(offs)+1)
		pts = append(pts, offs[0].start)
		for i := 1; i < len(offs); i++ {
			pts = append(pts, join(offs[i-1], offs[i]))
		}
		pts = append(pts, offs[len(offs)-1].end)
	}

	out, err := NewPolyline(pts, p.Closed)
	if err != nil {
		return Polyline{}, degenerateErr(op, "offset collapses the polyline")
	}
	out.Style = p.Style
	return out, nil
}

// OffsetEntity offsets a single entity by the signed distance. Dimensions
// have no parallel-copy meaning and fail with a degenerate-geometry error.
func OffsetEntity(e Entity, distance float64) (Entity, error) {
	switch v := e.(type) {
	case Line:
		return OffsetLine(v, distance)
	case Polyline:
		return OffsetPolyline(v, distance)
	case Circle:
		return OffsetCircle(v, distance)
	case Arc:
		return OffsetArc(v, distance)
	default:
		return nil, degenerateErr("offset", "entity kind "+e.Kind().String()+" cannot be offset")
	}
}

// ParallelCopies applies OffsetEntity once per distance, skipping any
// distance whose offset fails.
func ParallelCopies(e Entity, distances []float64) []Entity {
	out := make([]Entity, 0, len(distances))
	for _, d := range distances {
		c, err := OffsetEntity(e, d)
		if err != nil {
			Logger().Warn("parallel copy skipped", "distance", d, "reason", err.Error())
			continue
		}
		out = append(out, c)
	}
	return out
}

// OffsetCopies returns count parallel copies spaced evenly at multiples
// of spacing: spacing, 2*spacing, ..., count*spacing.
func OffsetCopies(e Entity, count int, spacing float64) []Entity {
	distances := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		distances = append(distances, float64(i)*spacing)
	}
	return ParallelCopies(e, distances)
}

// BidirectionalOffset returns the copies at -distance and +distance.
func BidirectionalOffset(e Entity, distance float64) []Entity {
	return ParallelCopies(e, []float64{-distance, distance})
}
