package draft

import (
	"errors"
	"testing"
)

func TestOffsetLine(t *testing.T) {
	l := mustLine(t, Pt(0, 0), Pt(10, 0))

	// Positive distance offsets to the left of the start-to-end direction.
	left, err := OffsetLine(l, 2)
	if err != nil {
		t.Fatalf("OffsetLine: %v", err)
	}
	if !pointsApprox(left.Start, Pt(0, 2), 1e-12) || !pointsApprox(left.End, Pt(10, 2), 1e-12) {
		t.Errorf("left offset = %v -> %v, want (0, 2) -> (10, 2)", left.Start, left.End)
	}

	right, err := OffsetLine(l, -2)
	if err != nil {
		t.Fatalf("OffsetLine: %v", err)
	}
	if !pointsApprox(right.Start, Pt(0, -2), 1e-12) {
		t.Errorf("right offset start = %v, want (0, -2)", right.Start)
	}

	// Length and direction are preserved.
	if !approx(left.Length(), l.Length(), 1e-12) {
		t.Errorf("offset changed length: %v", left.Length())
	}
	if !pointsApprox(left.Direction(), l.Direction(), 1e-12) {
		t.Errorf("offset changed direction: %v", left.Direction())
	}
}

func TestOffsetCircle(t *testing.T) {
	c, err := NewCircle(Pt(5, 5), 10)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}

	grown, err := OffsetCircle(c, 3)
	if err != nil {
		t.Fatalf("OffsetCircle: %v", err)
	}
	if grown.Radius != 13 || grown.Center != c.Center {
		t.Errorf("grown = r%v at %v, want r13 at (5, 5)", grown.Radius, grown.Center)
	}

	shrunk, err := OffsetCircle(c, -4)
	if err != nil {
		t.Fatalf("OffsetCircle: %v", err)
	}
	if shrunk.Radius != 6 {
		t.Errorf("shrunk radius = %v, want 6", shrunk.Radius)
	}

	// Offsetting inward by the full radius (or more) collapses the circle.
	for _, d := range []float64{-10, -15} {
		if _, err := OffsetCircle(c, d); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("distance %v: err = %v, want ErrDegenerateGeometry", d, err)
		}
	}
}

func TestOffsetArc(t *testing.T) {
	a, err := NewArc(Pt(0, 0), 5, 0, 1, true)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	out, err := OffsetArc(a, 2)
	if err != nil {
		t.Fatalf("OffsetArc: %v", err)
	}
	if out.Radius != 7 || out.StartAngle != a.StartAngle || out.EndAngle != a.EndAngle {
		t.Errorf("offset arc = %+v", out)
	}
	if _, err := OffsetArc(a, -5); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("collapse: err = %v, want ErrDegenerateGeometry", err)
	}
}

func TestOffsetPolylineOpen(t *testing.T) {
	p, err := NewPolyline([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, false)
	if err != nil {
		t.Fatalf("NewPolyline: %v", err)
	}

	out, err := OffsetPolyline(p, 1)
	if err != nil {
		t.Fatalf("OffsetPolyline: %v", err)
	}
	want := []Point{Pt(0, 1), Pt(9, 1), Pt(9, 10)}
	if len(out.Points) != len(want) {
		t.Fatalf("got %d points %v, want %d", len(out.Points), out.Points, len(want))
	}
	for i := range want {
		if !pointsApprox(out.Points[i], want[i], 1e-9) {
			t.Errorf("point %d = %v, want %v", i, out.Points[i], want[i])
		}
	}
	if out.Closed {
		t.Error("open polyline came back closed")
	}
}

func TestOffsetPolylineClosed(t *testing.T) {
	square, err := NewPolyline([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, true)
	if err != nil {
		t.Fatalf("NewPolyline: %v", err)
	}

	// Each edge's Perp direction points into the square with this vertex
	// order, so a positive offset shrinks it.
	out, err := OffsetPolyline(square, 1)
	if err != nil {
		t.Fatalf("OffsetPolyline: %v", err)
	}
	if !out.Closed || len(out.Points) != 4 {
		t.Fatalf("got closed=%v with %d points", out.Closed, len(out.Points))
	}
	if got := PolygonArea(out.Points); !approx(got, 64, 1e-9) {
		t.Errorf("inward square area = %v, want 64", got)
	}

	// A negative offset grows it.
	grown, err := OffsetPolyline(square, -1)
	if err != nil {
		t.Fatalf("OffsetPolyline: %v", err)
	}
	if got := PolygonArea(grown.Points); !approx(got, 144, 1e-9) {
		t.Errorf("outward square area = %v, want 144", got)
	}
}

func TestOffsetPolylineCollinear(t *testing.T) {
	// Middle vertex splits a straight run; the collinear join keeps the
	// shared offset point instead of failing.
	p, err := NewPolyline([]Point{Pt(0, 0), Pt(5, 0), Pt(10, 0)}, false)
	if err != nil {
		t.Fatalf("NewPolyline: %v", err)
	}
	out, err := OffsetPolyline(p, 2)
	if err != nil {
		t.Fatalf("OffsetPolyline: %v", err)
	}
	want := []Point{Pt(0, 2), Pt(5, 2), Pt(10, 2)}
	for i := range want {
		if !pointsApprox(out.Points[i], want[i], 1e-9) {
			t.Errorf("point %d = %v, want %v", i, out.Points[i], want[i])
		}
	}
}

func TestOffsetEntity(t *testing.T) {
	l := mustLine(t, Pt(0, 0), Pt(10, 0))
	e, err := OffsetEntity(l, 1)
	if err != nil {
		t.Fatalf("OffsetEntity(line): %v", err)
	}
	if e.Kind() != KindLine {
		t.Errorf("offset of line has kind %v", e.Kind())
	}

	d, err := NewDimension(Radial, []Point{Pt(0, 0), Pt(5, 0)})
	if err != nil {
		t.Fatalf("NewDimension: %v", err)
	}
	if _, err := OffsetEntity(d, 1); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("dimension offset: err = %v, want ErrDegenerateGeometry", err)
	}
}

func TestParallelCopiesSkipsFailures(t *testing.T) {
	c, err := NewCircle(Pt(0, 0), 5)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	// -5 collapses the circle and is skipped; the other two succeed.
	out := ParallelCopies(c, []float64{-5, -2, 2})
	if len(out) != 2 {
		t.Fatalf("got %d copies, want 2", len(out))
	}
	radii := []float64{out[0].(Circle).Radius, out[1].(Circle).Radius}
	if radii[0] != 3 || radii[1] != 7 {
		t.Errorf("radii = %v, want [3 7]", radii)
	}
}

func TestOffsetCopies(t *testing.T) {
	l := mustLine(t, Pt(0, 0), Pt(10, 0))
	out := OffsetCopies(l, 3, 2)
	if len(out) != 3 {
		t.Fatalf("got %d copies, want 3", len(out))
	}
	for i, e := range out {
		line := e.(Line)
		wantY := float64(i+1) * 2
		if !approx(line.Start.Y, wantY, 1e-12) {
			t.Errorf("copy %d at y = %v, want %v", i, line.Start.Y, wantY)
		}
	}
}

func TestBidirectionalOffset(t *testing.T) {
	l := mustLine(t, Pt(0, 0), Pt(10, 0))
	out := BidirectionalOffset(l, 2)
	if len(out) != 2 {
		t.Fatalf("got %d copies, want 2", len(out))
	}
	if y0, y1 := out[0].(Line).Start.Y, out[1].(Line).Start.Y; y0 != -2 || y1 != 2 {
		t.Errorf("offsets at y = %v, %v, want -2, 2", y0, y1)
	}
}
