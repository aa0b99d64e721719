package tool

import (
	"errors"
	"math"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// pickTolerancePx is the pixel perpendicular distance within which a
// click picks an existing line.
const pickTolerancePx = 5

// defaultFilletRadius is the working radius a fresh tool starts with.
const defaultFilletRadius = 5.0

// FilletTool rounds the corner between two existing lines. It is
// selection-based rather than point-based: the first click picks a line
// entity within 5 px, the second click (on a different line) picks the
// other. Holding the shift modifier on the second click opens a
// radius-edit step before committing; + and - adjust the working radius;
// Escape steps back through second selection, first selection, then
// exits the tool.
//
// Line ids are re-validated against the store at commit time: an id
// deleted by an external undo between clicks resets the tool to the
// appropriate earlier selection step.
type FilletTool struct {
	ctx *Context

	firstID       string
	secondID      string
	editingRadius bool
	radius        float64
}

// NewFilletTool creates the fillet tool with the default working radius.
func NewFilletTool() *FilletTool {
	return &FilletTool{radius: defaultFilletRadius}
}

// Radius returns the current working radius.
func (t *FilletTool) Radius() float64 { return t.radius }

// SetRadius sets the working radius, ignoring non-positive values.
func (t *FilletTool) SetRadius(r float64) {
	if r > 0 {
		t.radius = r
	}
}

// ID implements Tool.
func (t *FilletTool) ID() string { return "fillet" }

// Name implements Tool.
func (t *FilletTool) Name() string { return "Fillet" }

// Icon implements Tool.
func (t *FilletTool) Icon() string { return "fillet" }

// Cursor implements Tool.
func (t *FilletTool) Cursor() string { return "pointer" }

// Activate implements Tool.
func (t *FilletTool) Activate(ctx *Context) {
	t.ctx = ctx
	t.clear()
	ctx.prompt("Fillet: pick first line (radius %s)", t.ctx.Config.FormatValue(t.radius, false))
}

// Deactivate implements Tool.
func (t *FilletTool) Deactivate() {
	t.clear()
	if t.ctx != nil && t.ctx.Store != nil {
		t.ctx.Store.ClearSelection()
	}
}

func (t *FilletTool) clear() {
	t.firstID = ""
	t.secondID = ""
	t.editingRadius = false
}

// pickLine returns the id of the stored line nearest to p within the
// pick tolerance.
func (t *FilletTool) pickLine(p draft.Point) (string, bool) {
	tol := t.ctx.pxToUnits(pickTolerancePx)
	bestID := ""
	best := math.Inf(1)
	for id, l := range t.ctx.Store.Lines() {
		d := draft.DistanceToSegment(p, l.Start, l.End)
		if d <= tol && d < best {
			best = d
			bestID = id
		}
	}
	return bestID, bestID != ""
}

// OnPointerDown implements Tool.
func (t *FilletTool) OnPointerDown(p draft.Point) {
	if t.editingRadius {
		// Radius edit is keyboard-driven; a click commits.
		t.commit()
		return
	}

	id, ok := t.pickLine(p)
	if !ok {
		t.ctx.prompt("Fillet: no line within range")
		return
	}

	if t.firstID == "" {
		t.firstID = id
		t.ctx.Store.SelectEntities(id)
		t.ctx.prompt("Fillet: pick second line")
		return
	}
	if id == t.firstID {
		t.ctx.prompt("Fillet: pick a different line")
		return
	}

	t.secondID = id
	t.ctx.Store.SelectEntities(t.firstID, t.secondID)
	if t.ctx.Modifiers.Shift {
		t.editingRadius = true
		t.ctx.prompt("Fillet: radius %s (+/- adjusts, Enter commits)",
			t.ctx.Config.FormatValue(t.radius, false))
		return
	}
	t.commit()
}

// OnPointerMove implements Tool.
func (t *FilletTool) OnPointerMove(draft.Point) {}

// OnKeyDown implements Tool.
func (t *FilletTool) OnKeyDown(ev KeyEvent) {
	switch ev.Key {
	case "Escape":
		t.stepBack()
	case "+", "=":
		t.adjustRadius(1)
	case "-", "_":
		t.adjustRadius(-1)
	case "Enter":
		if t.editingRadius {
			t.commit()
		}
	}
}

// stepBack clears the second selection, then the first, then exits.
func (t *FilletTool) stepBack() {
	switch {
	case t.editingRadius:
		t.editingRadius = false
		t.secondID = ""
		t.ctx.Store.SelectEntities(t.firstID)
		t.ctx.prompt("Fillet: pick second line")
	case t.secondID != "":
		t.secondID = ""
		t.ctx.Store.SelectEntities(t.firstID)
		t.ctx.prompt("Fillet: pick second line")
	case t.firstID != "":
		t.firstID = ""
		t.ctx.Store.ClearSelection()
		t.ctx.prompt("Fillet: pick first line")
	default:
		if t.ctx.exit != nil {
			t.ctx.exit()
		}
	}
}

func (t *FilletTool) adjustRadius(delta float64) {
	r := t.radius + delta
	if r < 0.5 {
		r = 0.5
	}
	t.radius = r
	if t.editingRadius {
		t.ctx.prompt("Fillet: radius %s (+/- adjusts, Enter commits)",
			t.ctx.Config.FormatValue(t.radius, false))
	}
}

// commit re-validates both selections, constructs the fillet, replaces
// the two stored lines with their trimmed versions and adds the arc.
// Failures restore the tool to the appropriate earlier step and leave
// the store untouched.
func (t *FilletTool) commit() {
	a, okA := t.ctx.Store.Line(t.firstID)
	if !okA {
		// Stale first selection: restart the interaction.
		t.clear()
		t.ctx.Store.ClearSelection()
		t.ctx.prompt("Fillet: first line no longer exists, pick first line")
		return
	}
	b, okB := t.ctx.Store.Line(t.secondID)
	if !okB {
		t.secondID = ""
		t.editingRadius = false
		t.ctx.Store.SelectEntities(t.firstID)
		t.ctx.prompt("Fillet: second line no longer exists, pick second line")
		return
	}

	res, err := draft.Fillet(a, b, t.radius)
	if err != nil {
		var gerr *draft.GeometryError
		if errors.As(err, &gerr) {
			t.ctx.prompt("Fillet: %s", gerr.Reason)
		} else {
			t.ctx.prompt("Fillet: %v", err)
		}
		// Keep both selections so the radius can be adjusted and retried.
		t.editingRadius = false
		draft.Logger().Warn("fillet aborted", "reason", err.Error())
		return
	}

	if err := t.ctx.Store.UpdateEntity(t.firstID, res.Trimmed[0]); err != nil {
		t.ctx.prompt("Fillet: %v", err)
		return
	}
	if err := t.ctx.Store.UpdateEntity(t.secondID, res.Trimmed[1]); err != nil {
		t.ctx.prompt("Fillet: %v", err)
		return
	}
	arc := res.Arc
	arc.Style = t.ctx.Config.Style()
	id := t.ctx.Store.AddEntity(arc)
	draft.Logger().Info("entity committed", "tool", t.ID(), "id", id)

	t.ctx.Store.ClearSelection()
	t.clear()
	t.ctx.prompt("Fillet: pick first line (radius %s)", t.ctx.Config.FormatValue(t.radius, false))
}

// RenderPreview implements Tool.
func (t *FilletTool) RenderPreview(s surface.Surface) {
	if t.firstID != "" {
		if l, ok := t.ctx.Store.Line(t.firstID); ok {
			highlightLine(s, l)
		}
	}
	if t.secondID != "" {
		if l, ok := t.ctx.Store.Line(t.secondID); ok {
			highlightLine(s, l)
		}
	}
	// During the radius-edit step, show the candidate arc.
	if t.editingRadius {
		a, okA := t.ctx.Store.Line(t.firstID)
		b, okB := t.ctx.Store.Line(t.secondID)
		if okA && okB {
			if res, err := draft.Fillet(a, b, t.radius); err == nil {
				strokeDashedArc(s, res.Arc.Center, res.Arc.Radius,
					res.Arc.StartAngle, res.Arc.EndAngle, res.Arc.Counterclockwise)
			}
		}
	}
}

// State implements Tool.
func (t *FilletTool) State() State {
	switch {
	case t.firstID == "":
		return StateIdle
	case t.secondID == "":
		return StateCollecting
	default:
		return StateReady
	}
}

// Verify FilletTool implements Tool.
var _ Tool = (*FilletTool)(nil)
