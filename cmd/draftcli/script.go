package main

import (
	"fmt"
	"os"

	draft "github.com/draftkit/draft2d"
	"github.com/draftkit/draft2d/tool"
	"gopkg.in/yaml.v3"
)

// script is a replayable interaction recording: an optional inline
// configuration plus an ordered event list.
type script struct {
	Config *tool.Config `yaml:"config"`
	Events []event      `yaml:"events"`
}

// event is one input event. Exactly one of Tool, Down, Move or Key is
// set; Shift/Ctrl/Alt describe the modifier state during the event.
type event struct {
	// Tool activates the named tool: line, arc, polyline, fillet,
	// dimension-linear, dimension-angular, dimension-radial,
	// dimension-diametrical.
	Tool string `yaml:"tool,omitempty"`

	// Down is a pointer-down at [x, y] in drawing-space units.
	Down []float64 `yaml:"down,omitempty"`

	// Move is a pointer-move to [x, y].
	Move []float64 `yaml:"move,omitempty"`

	// Key is a key-down: "Escape", "Enter", "c", "+", "-", ...
	Key string `yaml:"key,omitempty"`

	Shift bool `yaml:"shift,omitempty"`
	Ctrl  bool `yaml:"ctrl,omitempty"`
	Alt   bool `yaml:"alt,omitempty"`
}

// loadScript reads and validates a YAML event script.
func loadScript(path string) (script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return script{}, fmt.Errorf("read script: %w", err)
	}
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, ev := range sc.Events {
		if len(ev.Down) != 0 && len(ev.Down) != 2 {
			return script{}, fmt.Errorf("event %d: down needs [x, y]", i)
		}
		if len(ev.Move) != 0 && len(ev.Move) != 2 {
			return script{}, fmt.Errorf("event %d: move needs [x, y]", i)
		}
	}
	return sc, nil
}

// newTool maps a script tool name to a tool instance.
func newTool(name string) (tool.Tool, error) {
	switch name {
	case "line":
		return tool.NewLineTool(), nil
	case "arc":
		return tool.NewArcTool(), nil
	case "polyline":
		return tool.NewPolylineTool(), nil
	case "fillet":
		return tool.NewFilletTool(), nil
	case "dimension-linear":
		return tool.NewDimensionTool(draft.Linear), nil
	case "dimension-angular":
		return tool.NewDimensionTool(draft.Angular), nil
	case "dimension-radial":
		return tool.NewDimensionTool(draft.Radial), nil
	case "dimension-diametrical":
		return tool.NewDimensionTool(draft.Diametrical), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

// run replays the script's events through a manager.
func (sc script) run(mgr *tool.Manager) error {
	for i, ev := range sc.Events {
		mgr.SetModifiers(ev.Shift, ev.Ctrl, ev.Alt)
		switch {
		case ev.Tool != "":
			t, err := newTool(ev.Tool)
			if err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
			mgr.Activate(t)
		case len(ev.Down) == 2:
			mgr.OnPointerDown(draft.Pt(ev.Down[0], ev.Down[1]))
		case len(ev.Move) == 2:
			mgr.OnPointerMove(draft.Pt(ev.Move[0], ev.Move[1]))
		case ev.Key != "":
			mgr.OnKeyDown(tool.KeyEvent{
				Key: ev.Key, Shift: ev.Shift, Ctrl: ev.Ctrl, Alt: ev.Alt,
			})
		default:
			return fmt.Errorf("event %d: empty event", i)
		}
	}
	return nil
}

// describeEntity summarizes an entity for terminal output.
func describeEntity(e draft.Entity) string {
	switch v := e.(type) {
	case draft.Line:
		return fmt.Sprintf("line (%.3g, %.3g) -> (%.3g, %.3g)",
			v.Start.X, v.Start.Y, v.End.X, v.End.Y)
	case draft.Arc:
		return fmt.Sprintf("arc center (%.3g, %.3g) r=%.3g", v.Center.X, v.Center.Y, v.Radius)
	case draft.Circle:
		return fmt.Sprintf("circle center (%.3g, %.3g) r=%.3g", v.Center.X, v.Center.Y, v.Radius)
	case draft.Polyline:
		return fmt.Sprintf("polyline %d points closed=%v", len(v.Points), v.Closed)
	case draft.Dimension:
		return fmt.Sprintf("dimension %s %q", v.Type, v.Text)
	default:
		return e.Kind().String()
	}
}
