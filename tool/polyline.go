package tool

import (
	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// closeTolerancePx is the pixel radius around the first point within
// which a click closes the polyline.
const closeTolerancePx = 10

// doubleClickTolerancePx is the pixel radius within which a repeat
// click counts as the second click of a double-click. It is much
// tighter than the close tolerance so that vertices can be placed
// near each other.
const doubleClickTolerancePx = 2

// PolylineTool draws polylines of unbounded point count (at least two).
//
// Commit paths:
//   - clicking within 10 px of the first point with at least three
//     points commits closed
//   - a click on the previous point (the second click of a double-click)
//     commits open
//   - the C key commits closed with at least three points
//   - Enter commits open with at least two points
type PolylineTool struct {
	collector
}

// NewPolylineTool creates the polyline drafting tool.
func NewPolylineTool() *PolylineTool { return &PolylineTool{} }

// ID implements Tool.
func (t *PolylineTool) ID() string { return "polyline" }

// Name implements Tool.
func (t *PolylineTool) Name() string { return "Polyline" }

// Icon implements Tool.
func (t *PolylineTool) Icon() string { return "polyline" }

// Cursor implements Tool.
func (t *PolylineTool) Cursor() string { return "crosshair" }

// Activate implements Tool.
func (t *PolylineTool) Activate(ctx *Context) {
	t.activate(ctx)
	ctx.prompt("Polyline: pick first point")
}

// Deactivate implements Tool.
func (t *PolylineTool) Deactivate() { t.deactivate() }

// OnPointerDown implements Tool.
func (t *PolylineTool) OnPointerDown(p draft.Point) {
	if len(t.temp) >= 3 && p.Near(t.temp[0], t.ctx.pxToUnits(closeTolerancePx)) {
		t.commit(true)
		return
	}
	// Double-click: the second click lands on the previous point.
	if len(t.temp) >= 2 && p.Near(t.temp[len(t.temp)-1], t.ctx.pxToUnits(doubleClickTolerancePx)) {
		t.commit(false)
		return
	}
	t.push(p)
	t.ctx.prompt("Polyline: %d points (C closes, Enter commits)", len(t.temp))
}

// OnPointerMove implements Tool.
func (t *PolylineTool) OnPointerMove(p draft.Point) { t.move(p) }

// OnKeyDown implements Tool.
func (t *PolylineTool) OnKeyDown(ev KeyEvent) {
	switch ev.Key {
	case "Escape":
		t.escape()
	case "c", "C":
		if len(t.temp) >= 3 {
			t.commit(true)
		}
	case "Enter":
		if len(t.temp) >= 2 {
			t.commit(false)
		}
	}
}

// commit builds the polyline from the temp points and commits it.
func (t *PolylineTool) commit(closed bool) {
	pl, err := draft.NewPolyline(t.temp, closed)
	if err != nil {
		t.ctx.prompt("Polyline: %v", err)
		return
	}
	pl.Style = t.ctx.Config.Style()
	id := t.ctx.Store.AddEntity(pl)
	draft.Logger().Info("entity committed", "tool", t.ID(), "id", id, "closed", closed)
	t.reset()
	t.ctx.prompt("Polyline: pick first point")
}

// RenderPreview implements Tool.
func (t *PolylineTool) RenderPreview(s surface.Surface) {
	if len(t.temp) > 0 {
		pts := t.temp
		if t.hasHover {
			pts = append(append([]draft.Point(nil), pts...), t.hover)
		}
		strokeDashedPolyline(s, pts)
	}
	drawMarkers(s, t.temp)
}

// State implements Tool.
// A polyline is Ready once it has its two-point minimum; it keeps
// collecting until one of the commit paths fires.
func (t *PolylineTool) State() State { return t.state(2) }

// Verify PolylineTool implements Tool.
var _ Tool = (*PolylineTool)(nil)
