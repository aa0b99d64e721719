package tool

import (
	"testing"

	draft "github.com/draftkit/draft2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionToolLinear(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewDimensionTool(draft.Linear)
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(100, 0))
	assert.Equal(t, StateCollecting, tool.State(), "linear needs the offset point")
	assert.Empty(t, store.Entities())

	mgr.OnPointerDown(draft.Pt(50, 15))

	require.Len(t, store.Entities(), 1)
	dim, ok := store.Entities()[0].(draft.Dimension)
	require.True(t, ok)
	assert.Equal(t, draft.Linear, dim.Type)
	assert.Equal(t, "100.00 mm", dim.Text)
	assert.InDelta(t, 15.0, dim.OffsetDistance, 1e-9)

	v, ok := dim.Value()
	require.True(t, ok)
	assert.InDelta(t, 100.0, v, 1e-9)
	assert.Equal(t, StateIdle, tool.State())
}

func TestDimensionToolAngular(t *testing.T) {
	mgr, store := newTestManager(t)
	mgr.Activate(NewDimensionTool(draft.Angular))

	mgr.OnPointerDown(draft.Pt(0, 0)) // vertex
	mgr.OnPointerDown(draft.Pt(1, 0)) // first ray
	mgr.OnPointerDown(draft.Pt(0, 1)) // second ray

	require.Len(t, store.Entities(), 1)
	dim := store.Entities()[0].(draft.Dimension)
	assert.Equal(t, "90.00°", dim.Text)
}

func TestDimensionToolRadialAndDiametrical(t *testing.T) {
	t.Run("radial", func(t *testing.T) {
		mgr, store := newTestManager(t)
		mgr.Activate(NewDimensionTool(draft.Radial))

		mgr.OnPointerDown(draft.Pt(0, 0)) // center
		mgr.OnPointerDown(draft.Pt(3, 4)) // edge

		require.Len(t, store.Entities(), 1)
		assert.Equal(t, "5.00 mm", store.Entities()[0].(draft.Dimension).Text)
	})

	t.Run("diametrical doubles the distance", func(t *testing.T) {
		mgr, store := newTestManager(t)
		mgr.Activate(NewDimensionTool(draft.Diametrical))

		mgr.OnPointerDown(draft.Pt(0, 0))
		mgr.OnPointerDown(draft.Pt(3, 4))

		require.Len(t, store.Entities(), 1)
		assert.Equal(t, "10.00 mm", store.Entities()[0].(draft.Dimension).Text)
	})
}

func TestDimensionToolOverrideText(t *testing.T) {
	mgr, store := newTestManager(t)
	tool := NewDimensionTool(draft.Radial)
	tool.SetOverrideText("R TYP.")
	mgr.Activate(tool)

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(5, 0))

	require.Len(t, store.Entities(), 1)
	assert.Equal(t, "R TYP.", store.Entities()[0].(draft.Dimension).Text)
}

func TestDimensionToolPrecisionApplies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Precision = 0
	cfg.Unit = "cm"
	store := NewMemStore()
	mgr := NewManager(store, cfg)
	mgr.Activate(NewDimensionTool(draft.Radial))

	mgr.OnPointerDown(draft.Pt(0, 0))
	mgr.OnPointerDown(draft.Pt(7.4, 0))

	require.Len(t, store.Entities(), 1)
	assert.Equal(t, "7 cm", store.Entities()[0].(draft.Dimension).Text)
}

func TestDimensionToolPrompts(t *testing.T) {
	mgr, store := newTestManager(t)
	mgr.Activate(NewDimensionTool(draft.Angular))
	assert.Contains(t, store.Prompt(), "vertex")

	mgr.OnPointerDown(draft.Pt(0, 0))
	assert.Contains(t, store.Prompt(), "first ray point")
	mgr.OnPointerDown(draft.Pt(1, 0))
	assert.Contains(t, store.Prompt(), "second ray point")
}

func TestDimensionToolID(t *testing.T) {
	assert.Equal(t, "dimension-linear", NewDimensionTool(draft.Linear).ID())
	assert.Equal(t, "dimension-angular", NewDimensionTool(draft.Angular).ID())
	assert.Equal(t, "dimension-radial", NewDimensionTool(draft.Radial).ID())
	assert.Equal(t, "dimension-diametrical", NewDimensionTool(draft.Diametrical).ID())
}
