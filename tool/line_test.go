package tool

import (
	"testing"

	draft "github.com/draftkit/draft2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineToolCommitsOnSecondPoint(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewLineTool()
	mgr.Activate(tool)

	assert.Equal(t, StateIdle, tool.State())

	mgr.OnPointerDown(draft.Pt(0, 0))
	assert.Equal(t, StateCollecting, tool.State())

	mgr.OnPointerDown(draft.Pt(100, 0))
	require.Len(t, store.Entities(), 1)

	l, ok := store.Entities()[0].(draft.Line)
	require.True(t, ok)
	assert.Equal(t, draft.Pt(0, 0), l.Start)
	assert.Equal(t, draft.Pt(100, 0), l.End)

	// The tool resets so the next line starts immediately.
	assert.Equal(t, StateIdle, tool.State())
	assert.Contains(t, store.Prompt(), "start point")
}

func TestLineToolRejectsCoincidentSecondPoint(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewLineTool()
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(5, 5))
	mgr.OnPointerDown(draft.Pt(5, 5.0005)) // within LineTolerance

	assert.Empty(t, store.Entities())
	assert.Equal(t, StateCollecting, tool.State(), "tool keeps collecting")

	// A distinct point still commits.
	mgr.OnPointerDown(draft.Pt(15, 5))
	assert.Len(t, store.Entities(), 1)
}

func TestLineToolUsesConfiguredStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrokeWidth = 3
	cfg.Dash = []float64{6, 4}
	store := NewMemStore()
	mgr := NewManager(store, cfg)
	mgr.Activate(NewLineTool())

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(10, 0))

	require.Len(t, store.Entities(), 1)
	l := store.Entities()[0].(draft.Line)
	assert.Equal(t, 3.0, l.Style.StrokeWidth)
	assert.Equal(t, []float64{6, 4}, l.Style.Dash)
}

func TestLineToolEscapeDropsPoint(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewLineTool()
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Equal(t, StateIdle, tool.State())

	// The dropped start point is gone; the next two clicks define a
	// fresh line.
	mgr.OnPointerDown(draft.Pt(50, 50))
	mgr.OnPointerDown(draft.Pt(60, 50))
	require.Len(t, store.Entities(), 1)
	assert.Equal(t, draft.Pt(50, 50), store.Entities()[0].(draft.Line).Start)
}

func TestLineToolMetadata(t *testing.T) {
	tool := NewLineTool()
	assert.Equal(t, "line", tool.ID())
	assert.Equal(t, "Line", tool.Name())
	assert.Equal(t, "line", tool.Icon())
	assert.Equal(t, "crosshair", tool.Cursor())
}
