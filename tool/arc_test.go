package tool

import (
	"math"
	"testing"

	draft "github.com/draftkit/draft2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcToolCommitsOnThirdPoint(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewArcTool()
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(0, 0))  // center
	mgr.OnPointerDown(draft.Pt(10, 0)) // radius and start angle
	assert.Equal(t, StateCollecting, tool.State())

	mgr.OnPointerDown(draft.Pt(0, 10)) // end angle
	require.Len(t, store.Entities(), 1)

	arc, ok := store.Entities()[0].(draft.Arc)
	require.True(t, ok)
	assert.Equal(t, draft.Pt(0, 0), arc.Center)
	assert.InDelta(t, 10.0, arc.Radius, 1e-9)
	assert.InDelta(t, 0.0, arc.StartAngle, 1e-9)
	assert.InDelta(t, math.Pi/2, arc.EndAngle, 1e-9)
	assert.True(t, arc.Counterclockwise)

	assert.Equal(t, StateIdle, tool.State())
}

func TestArcToolIgnoresZeroRadiusPoint(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewArcTool()
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(5, 5))
	mgr.OnPointerDown(draft.Pt(5, 5)) // coincides with the center
	assert.Equal(t, StateCollecting, tool.State())
	assert.Empty(t, store.Entities())

	mgr.OnPointerDown(draft.Pt(15, 5))
	mgr.OnPointerDown(draft.Pt(5, 15))
	assert.Len(t, store.Entities(), 1)
}

func TestArcToolShiftSnapsSweep(t *testing.T) {
	mgr, store := newTestManager(t)
	mgr.Activate(NewArcTool())

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(10, 0))

	// The end click lands at 100 degrees; with shift held the sweep snaps
	// to the nearest right angle.
	mgr.SetModifiers(true, false, false)
	end := draft.PointFromPolar(draft.Pt(0, 0), 10, 100*math.Pi/180)
	mgr.OnPointerDown(end)

	require.Len(t, store.Entities(), 1)
	arc := store.Entities()[0].(draft.Arc)
	assert.InDelta(t, math.Pi/2, arc.SweepAngle(), 1e-9)
}

func TestArcToolSnapRecordedPerEvent(t *testing.T) {
	mgr, store := newTestManager(t)
	mgr.Activate(NewArcTool())

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(10, 0))

	// Shift held during a move but released before the final click: the
	// click's own modifier state wins.
	mgr.SetModifiers(true, false, false)
	mgr.OnPointerMove(draft.Pt(0, 10))
	mgr.SetModifiers(false, false, false)
	end := draft.PointFromPolar(draft.Pt(0, 0), 10, 100*math.Pi/180)
	mgr.OnPointerDown(end)

	require.Len(t, store.Entities(), 1)
	arc := store.Entities()[0].(draft.Arc)
	assert.InDelta(t, 100*math.Pi/180, arc.SweepAngle(), 1e-9)
}

func TestSnapSweep(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		end       float64
		wantSweep float64
	}{
		{"near quarter", 0, 100 * math.Pi / 180, math.Pi / 2},
		{"near half", 0, 170 * math.Pi / 180, math.Pi},
		{"near three-quarter", 0, 260 * math.Pi / 180, 3 * math.Pi / 2},
		{"tiny sweep rounds to full turn via zero", 0, 10 * math.Pi / 180, 2 * math.Pi},
		{"coincident end means full circle", 0, 0, 2 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := snapSweep(tt.start, tt.end)
			got := end - tt.start
			assert.InDelta(t, tt.wantSweep, got, 1e-9)
		})
	}
}

func TestArcToolEscape(t *testing.T) {
	mgr, _ := newTestManager(t)
	tool := NewArcTool()
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(10, 0))
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Equal(t, StateCollecting, tool.State())
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Equal(t, StateIdle, tool.State())
}
