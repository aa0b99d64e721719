package tool

import (
	"math"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// ArcTool draws circular arcs from three points: the center, a point
// defining radius and start angle, and a point defining the end angle.
//
// Holding the shift modifier on the final click snaps the swept angle to
// the nearest of 90°, 180°, 270° or 360° measured from the start angle.
// The modifier is sampled from Context.Modifiers when the pointer event
// arrives and recorded in the tool state, so the commit itself never
// needs the originating event.
type ArcTool struct {
	collector

	// snap records the shift modifier from the most recent pointer event.
	snap bool
}

// NewArcTool creates the arc drafting tool.
func NewArcTool() *ArcTool { return &ArcTool{} }

// ID implements Tool.
func (t *ArcTool) ID() string { return "arc" }

// Name implements Tool.
func (t *ArcTool) Name() string { return "Arc" }

// Icon implements Tool.
func (t *ArcTool) Icon() string { return "arc" }

// Cursor implements Tool.
func (t *ArcTool) Cursor() string { return "crosshair" }

// Activate implements Tool.
func (t *ArcTool) Activate(ctx *Context) {
	t.activate(ctx)
	t.snap = false
	ctx.prompt("Arc: pick center")
}

// Deactivate implements Tool.
func (t *ArcTool) Deactivate() { t.deactivate() }

// OnPointerDown implements Tool.
func (t *ArcTool) OnPointerDown(p draft.Point) {
	t.snap = t.ctx.Modifiers.Shift

	switch len(t.temp) {
	case 0:
		t.push(p)
		t.ctx.prompt("Arc: pick radius and start angle")
	case 1:
		if p.Near(t.temp[0], draft.LineTolerance) {
			return // zero radius, stay collecting
		}
		t.push(p)
		t.ctx.prompt("Arc: pick end angle")
	case 2:
		t.push(p)
		t.complete()
	}
}

// OnPointerMove implements Tool.
func (t *ArcTool) OnPointerMove(p draft.Point) {
	t.snap = t.ctx.Modifiers.Shift
	t.move(p)
}

// OnKeyDown implements Tool.
func (t *ArcTool) OnKeyDown(ev KeyEvent) {
	if ev.Key == "Escape" {
		t.escape()
	}
}

// complete builds the arc from the three temp points and commits it.
func (t *ArcTool) complete() {
	center, radiusPt, endPt := t.temp[0], t.temp[1], t.temp[2]
	radius := center.Distance(radiusPt)
	startAngle := draft.Angle(center, radiusPt)
	endAngle := draft.Angle(center, endPt)
	if t.snap {
		endAngle = snapSweep(startAngle, endAngle)
	}

	arc, err := draft.NewArc(center, radius, startAngle, endAngle, true)
	if err != nil {
		t.ctx.prompt("Arc: %v", err)
		t.stepBack()
		return
	}
	arc.Style = t.ctx.Config.Style()
	id := t.ctx.Store.AddEntity(arc)
	draft.Logger().Info("entity committed", "tool", t.ID(), "id", id)
	t.reset()
	t.ctx.prompt("Arc: pick center")
}

// snapSweep snaps the swept angle from startAngle to the nearest of
// 90°, 180°, 270° or 360°.
func snapSweep(startAngle, endAngle float64) float64 {
	sweep := draft.NormalizeAngle(endAngle - startAngle)
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	step := math.Pi / 2
	snapped := math.Round(sweep/step) * step
	if snapped == 0 {
		snapped = 2 * math.Pi
	}
	return startAngle + snapped
}

// RenderPreview implements Tool.
func (t *ArcTool) RenderPreview(s surface.Surface) {
	switch len(t.temp) {
	case 1:
		if t.hasHover {
			strokeDashedLine(s, t.temp[0], t.hover)
		}
	case 2:
		center := t.temp[0]
		radius := center.Distance(t.temp[1])
		strokeDashedCircle(s, center, radius)
		if t.hasHover {
			startAngle := draft.Angle(center, t.temp[1])
			endAngle := draft.Angle(center, t.hover)
			if t.snap {
				endAngle = snapSweep(startAngle, endAngle)
			}
			strokeDashedArc(s, center, radius, startAngle, endAngle, true)
		}
	}
	drawMarkers(s, t.temp)
}

// State implements Tool.
func (t *ArcTool) State() State { return t.state(3) }

// Verify ArcTool implements Tool.
var _ Tool = (*ArcTool)(nil)
