package tool

import (
	"image/color"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// Preview drawing shared by all tools: dashed in-progress strokes and
// point markers, with the first point marked distinctly from subsequent
// ones.

var (
	previewColor   = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	highlightColor = color.RGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	previewDash    = []float64{6, 4}
)

const (
	firstMarkerSize = 6
	markerSize      = 4
)

func previewStroke() surface.StrokeStyle {
	return surface.StrokeStyle{
		Color:       previewColor,
		Width:       1,
		DashPattern: previewDash,
	}
}

func solidStroke(c color.RGBA, width float64) surface.StrokeStyle {
	return surface.StrokeStyle{Color: c, Width: width}
}

// strokeDashedLine draws a dashed preview segment.
func strokeDashedLine(s surface.Surface, a, b draft.Point) {
	p := surface.NewPath()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	s.Stroke(p, previewStroke())
}

// strokeDashedPolyline draws a dashed preview through the given points.
func strokeDashedPolyline(s surface.Surface, pts []draft.Point) {
	if len(pts) < 2 {
		return
	}
	p := surface.NewPath()
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	s.Stroke(p, previewStroke())
}

// strokeDashedArc draws a dashed preview arc.
func strokeDashedArc(s surface.Surface, center draft.Point, radius, startAngle, endAngle float64, ccw bool) {
	p := surface.NewPath()
	p.Arc(center.X, center.Y, radius, startAngle, endAngle, ccw)
	s.Stroke(p, previewStroke())
}

// strokeDashedCircle draws a dashed preview circle.
func strokeDashedCircle(s surface.Surface, center draft.Point, radius float64) {
	p := surface.NewPath()
	p.Circle(center.X, center.Y, radius)
	s.Stroke(p, previewStroke())
}

// drawMarker draws a filled square marker at p. The first point of a
// construction gets a larger marker than subsequent points.
func drawMarker(s surface.Surface, pt draft.Point, first bool) {
	size := float64(markerSize)
	if first {
		size = firstMarkerSize
	}
	p := surface.NewPath()
	p.Rect(pt.X-size/2, pt.Y-size/2, size, size)
	s.Fill(p, surface.FillStyle{Color: previewColor})
}

// drawMarkers draws the whole temp-point sequence.
func drawMarkers(s surface.Surface, pts []draft.Point) {
	for i, pt := range pts {
		drawMarker(s, pt, i == 0)
	}
}

// highlightLine redraws a stored line in the selection accent color.
func highlightLine(s surface.Surface, l draft.Line) {
	p := surface.NewPath()
	p.MoveTo(l.Start.X, l.Start.Y)
	p.LineTo(l.End.X, l.End.Y)
	s.Stroke(p, solidStroke(highlightColor, l.Style.StrokeWidth+2))
}
