package tool

import (
	"testing"

	draft "github.com/draftkit/draft2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts ...ManagerOption) (*Manager, *MemStore) {
	t.Helper()
	store := NewMemStore()
	return NewManager(store, DefaultConfig(), opts...), store
}

func TestNewManagerPanicsOnInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Precision = 9
	assert.Panics(t, func() { NewManager(NewMemStore(), cfg) })
}

func TestManagerActivateSwitchesTools(t *testing.T) {
	mgr, store := newTestManager(t)

	line := NewLineTool()
	mgr.Activate(line)
	assert.Same(t, Tool(line), mgr.Active())
	assert.Contains(t, store.Prompt(), "Line")

	// Activating a new tool deactivates the previous one, dropping its
	// temp points.
	mgr.OnPointerDown(draft.Pt(0, 0))
	assert.Equal(t, StateCollecting, line.State())

	arc := NewArcTool()
	mgr.Activate(arc)
	assert.Same(t, Tool(arc), mgr.Active())
	assert.Equal(t, StateIdle, line.State())

	mgr.Deactivate()
	assert.Nil(t, mgr.Active())
}

func TestManagerForwardsEvents(t *testing.T) {
	mgr, store := newTestManager(t)
	mgr.Activate(NewLineTool())

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerMove(draft.Pt(5, 5))
	mgr.OnPointerDown(draft.Pt(10, 0))

	require.Len(t, store.Entities(), 1)
	l, ok := store.Entities()[0].(draft.Line)
	require.True(t, ok)
	assert.Equal(t, draft.Pt(10, 0), l.End)

	// Events with no active tool are ignored.
	mgr.Deactivate()
	mgr.OnPointerDown(draft.Pt(1, 1))
	mgr.OnKeyDown(KeyEvent{Key: "Enter"})
	assert.Len(t, store.Entities(), 1)
}

func TestManagerEscapeExitsToDefaultTool(t *testing.T) {
	def := NewLineTool()
	mgr, _ := newTestManager(t, WithDefaultTool(def))

	poly := NewPolylineTool()
	mgr.Activate(poly)

	// With no temp points, Escape exits to the default tool.
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Same(t, Tool(def), mgr.Active())
}

func TestManagerEscapeStepsBackFirst(t *testing.T) {
	def := NewLineTool()
	mgr, _ := newTestManager(t, WithDefaultTool(def))

	poly := NewPolylineTool()
	mgr.Activate(poly)
	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(10, 0))

	// Escape removes the most recent point, one at a time.
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Equal(t, StateCollecting, poly.State())
	assert.Same(t, Tool(poly), mgr.Active())

	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Equal(t, StateIdle, poly.State())
	assert.Same(t, Tool(poly), mgr.Active())

	// A further Escape with nothing left exits.
	mgr.OnKeyDown(KeyEvent{Key: "Escape"})
	assert.Same(t, Tool(def), mgr.Active())
}

func TestManagerSetModifiers(t *testing.T) {
	mgr, _ := newTestManager(t)
	mgr.SetModifiers(true, false, true)
	assert.Equal(t, Modifiers{Shift: true, Alt: true}, mgr.ctx.Modifiers)
	mgr.SetModifiers(false, false, false)
	assert.Equal(t, Modifiers{}, mgr.ctx.Modifiers)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "collecting", StateCollecting.String())
	assert.Equal(t, "ready", StateReady.String())
}

func TestContextPxToUnits(t *testing.T) {
	ctx := &Context{PixelScale: 0.5}
	assert.Equal(t, 5.0, ctx.pxToUnits(10))

	// Unset or invalid scale defaults to 1.
	ctx = &Context{}
	assert.Equal(t, 10.0, ctx.pxToUnits(10))
}
