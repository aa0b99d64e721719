package main

import (
	"os"
	"path/filepath"
	"testing"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScript(t *testing.T) {
	path := writeScript(t, `
config:
  precision: 3
  unit: cm
events:
  - tool: line
  - down: [0, 0]
  - move: [50, 50]
  - down: [100, 0]
  - key: Escape
`)
	sc, err := loadScript(path)
	require.NoError(t, err)
	require.NotNil(t, sc.Config)
	assert.Equal(t, 3, sc.Config.Precision)
	assert.Len(t, sc.Events, 5)
	assert.Equal(t, "line", sc.Events[0].Tool)
	assert.Equal(t, []float64{0, 0}, sc.Events[1].Down)
	assert.Equal(t, "Escape", sc.Events[4].Key)
}

func TestLoadScriptRejectsBadCoordinates(t *testing.T) {
	path := writeScript(t, "events:\n  - down: [1, 2, 3]\n")
	_, err := loadScript(path)
	assert.Error(t, err)

	path = writeScript(t, "events:\n  - move: [1]\n")
	_, err = loadScript(path)
	assert.Error(t, err)
}

func TestScriptRunCommitsEntities(t *testing.T) {
	path := writeScript(t, `
events:
  - tool: line
  - down: [0, 0]
  - down: [100, 0]
  - tool: polyline
  - down: [0, 0]
  - down: [10, 0]
  - down: [10, 10]
  - key: c
`)
	sc, err := loadScript(path)
	require.NoError(t, err)

	store := tool.NewMemStore()
	mgr := tool.NewManager(store, tool.DefaultConfig())
	require.NoError(t, sc.run(mgr))

	entities := store.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, draft.KindLine, entities[0].Kind())
	pl, ok := entities[1].(draft.Polyline)
	require.True(t, ok)
	assert.True(t, pl.Closed)
}

func TestScriptRunAppliesModifiers(t *testing.T) {
	path := writeScript(t, `
events:
  - tool: arc
  - down: [0, 0]
  - down: [10, 0]
  - down: [1, 10]
    shift: true
`)
	sc, err := loadScript(path)
	require.NoError(t, err)

	store := tool.NewMemStore()
	mgr := tool.NewManager(store, tool.DefaultConfig())
	require.NoError(t, sc.run(mgr))

	require.Len(t, store.Entities(), 1)
	arc := store.Entities()[0].(draft.Arc)
	assert.InDelta(t, 1.5707963, arc.SweepAngle(), 1e-6, "shift snaps the sweep")
}

func TestScriptRunUnknownTool(t *testing.T) {
	sc := script{Events: []event{{Tool: "lathe"}}}
	mgr := tool.NewManager(tool.NewMemStore(), tool.DefaultConfig())
	assert.Error(t, sc.run(mgr))
}

func TestNewToolNames(t *testing.T) {
	for _, name := range []string{
		"line", "arc", "polyline", "fillet",
		"dimension-linear", "dimension-angular", "dimension-radial", "dimension-diametrical",
	} {
		tl, err := newTool(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, tl.ID())
	}
	_, err := newTool("bezier")
	assert.Error(t, err)
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("0,0 10,0 10,10")
	require.NoError(t, err)
	assert.Equal(t, []draft.Point{draft.Pt(0, 0), draft.Pt(10, 0), draft.Pt(10, 10)}, pts)

	_, err = parsePoints("")
	assert.Error(t, err)
	_, err = parsePoints("1,2 3")
	assert.Error(t, err)
	_, err = parsePoints("a,b")
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	vals, err := parseFloats("0, 0, 100, 0", 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 100, 0}, vals)

	_, err = parseFloats("1,2", 3)
	assert.Error(t, err)
	_, err = parseFloats("1,x,3", 3)
	assert.Error(t, err)
}
