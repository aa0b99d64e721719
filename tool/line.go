package tool

import (
	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// LineTool draws straight segments from exactly two points. It commits
// as soon as the second point is distinct from the first and resets to
// Idle so the next line can be drawn without re-selecting the tool.
type LineTool struct {
	collector
}

// NewLineTool creates the line drafting tool.
func NewLineTool() *LineTool { return &LineTool{} }

// ID implements Tool.
func (t *LineTool) ID() string { return "line" }

// Name implements Tool.
func (t *LineTool) Name() string { return "Line" }

// Icon implements Tool.
func (t *LineTool) Icon() string { return "line" }

// Cursor implements Tool.
func (t *LineTool) Cursor() string { return "crosshair" }

// Activate implements Tool.
func (t *LineTool) Activate(ctx *Context) {
	t.activate(ctx)
	ctx.prompt("Line: pick start point")
}

// Deactivate implements Tool.
func (t *LineTool) Deactivate() { t.deactivate() }

// OnPointerDown implements Tool.
func (t *LineTool) OnPointerDown(p draft.Point) {
	if len(t.temp) == 0 {
		t.push(p)
		t.ctx.prompt("Line: pick end point")
		return
	}

	l, err := draft.NewLine(t.temp[0], p)
	if err != nil {
		// Coincident with the first point; stay collecting.
		return
	}
	l.Style = t.ctx.Config.Style()
	id := t.ctx.Store.AddEntity(l)
	draft.Logger().Info("entity committed", "tool", t.ID(), "id", id)
	t.reset()
	t.ctx.prompt("Line: pick start point")
}

// OnPointerMove implements Tool.
func (t *LineTool) OnPointerMove(p draft.Point) { t.move(p) }

// OnKeyDown implements Tool.
func (t *LineTool) OnKeyDown(ev KeyEvent) {
	if ev.Key == "Escape" {
		t.escape()
	}
}

// RenderPreview implements Tool.
func (t *LineTool) RenderPreview(s surface.Surface) {
	if len(t.temp) == 1 && t.hasHover {
		strokeDashedLine(s, t.temp[0], t.hover)
	}
	drawMarkers(s, t.temp)
}

// State implements Tool.
func (t *LineTool) State() State { return t.state(2) }

// Verify LineTool implements Tool.
var _ Tool = (*LineTool)(nil)
