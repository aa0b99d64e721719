package tool

import (
	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/surface"
)

// DimensionTool places dimension annotations. The required point count
// depends on the kind: Linear and Angular take a third offset/vertex
// point; Radial and Diametrical complete on two points.
//
// The label applies the configured decimal precision and unit suffix
// (degree sign for angular) unless an explicit override text is set.
type DimensionTool struct {
	collector

	kind draft.DimensionKind

	// override replaces the computed label when non-empty.
	override string
}

// NewDimensionTool creates a dimension tool for the given kind.
func NewDimensionTool(kind draft.DimensionKind) *DimensionTool {
	return &DimensionTool{kind: kind}
}

// SetOverrideText sets an explicit label, bypassing value formatting.
// Pass the empty string to restore computed labels.
func (t *DimensionTool) SetOverrideText(text string) { t.override = text }

// ID implements Tool.
func (t *DimensionTool) ID() string { return "dimension-" + t.kind.String() }

// Name implements Tool.
func (t *DimensionTool) Name() string { return "Dimension (" + t.kind.String() + ")" }

// Icon implements Tool.
func (t *DimensionTool) Icon() string { return "dimension" }

// Cursor implements Tool.
func (t *DimensionTool) Cursor() string { return "crosshair" }

// Activate implements Tool.
func (t *DimensionTool) Activate(ctx *Context) {
	t.activate(ctx)
	ctx.prompt("Dimension: pick %s", t.pointName(0))
}

// Deactivate implements Tool.
func (t *DimensionTool) Deactivate() { t.deactivate() }

// pointName describes the i-th point for the prompt, per kind.
func (t *DimensionTool) pointName(i int) string {
	switch t.kind {
	case draft.Angular:
		return [...]string{"vertex", "first ray point", "second ray point"}[i]
	case draft.Linear:
		return [...]string{"first point", "second point", "offset point"}[i]
	default:
		return [...]string{"center", "edge point"}[i]
	}
}

// OnPointerDown implements Tool.
func (t *DimensionTool) OnPointerDown(p draft.Point) {
	t.push(p)
	if len(t.temp) < t.kind.PointCount() {
		t.ctx.prompt("Dimension: pick %s", t.pointName(len(t.temp)))
		return
	}
	t.complete()
}

// OnPointerMove implements Tool.
func (t *DimensionTool) OnPointerMove(p draft.Point) { t.move(p) }

// OnKeyDown implements Tool.
func (t *DimensionTool) OnKeyDown(ev KeyEvent) {
	if ev.Key == "Escape" {
		t.escape()
	}
}

// complete builds the dimension entity and commits it.
func (t *DimensionTool) complete() {
	dim, err := draft.NewDimension(t.kind, t.temp)
	if err != nil {
		t.ctx.prompt("Dimension: %v", err)
		t.stepBack()
		return
	}
	dim.Style = t.ctx.Config.Style()
	if t.kind == draft.Linear {
		dim.OffsetDistance = draft.DistanceToSegment(t.temp[2], t.temp[0], t.temp[1])
	}
	if t.override != "" {
		dim.Text = t.override
	} else if v, ok := dim.Value(); ok {
		dim.Text = t.ctx.Config.FormatValue(v, t.kind == draft.Angular)
	}

	id := t.ctx.Store.AddEntity(dim)
	draft.Logger().Info("entity committed", "tool", t.ID(), "id", id, "text", dim.Text)
	t.reset()
	t.ctx.prompt("Dimension: pick %s", t.pointName(0))
}

// RenderPreview implements Tool.
func (t *DimensionTool) RenderPreview(s surface.Surface) {
	if len(t.temp) >= 1 && t.hasHover {
		strokeDashedLine(s, t.temp[len(t.temp)-1], t.hover)
	}
	if len(t.temp) >= 2 {
		strokeDashedPolyline(s, t.temp)
		// Live value readout next to the pointer.
		pts := append(append([]draft.Point(nil), t.temp...), t.hover)
		if d, err := draft.NewDimension(t.kind, pts[:min(len(pts), t.kind.PointCount())]); err == nil {
			if v, ok := d.Value(); ok && t.hasHover {
				s.DrawText(t.ctx.Config.FormatValue(v, t.kind == draft.Angular),
					t.hover.X+8, t.hover.Y-8, previewColor)
			}
		}
	}
	drawMarkers(s, t.temp)
}

// State implements Tool.
func (t *DimensionTool) State() State { return t.state(t.kind.PointCount()) }

// Verify DimensionTool implements Tool.
var _ Tool = (*DimensionTool)(nil)
