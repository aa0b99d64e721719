// Package draft provides the computational core of an interactive 2D
// drafting (CAD) editor.
//
// # Overview
//
// draft is a pure Go geometry kernel plus the stateful tool machinery that
// turns sequences of pointer and keyboard input into vector drawing
// entities: lines, arcs, polylines, fillets, chamfers, offsets and
// dimensions. Rendering, persistence and UI chrome are external
// collaborators reached through small interfaces.
//
// # Quick Start
//
//	import (
//	    "github.com/draftkit/draft2d"
//	    "github.com/draftkit/draft2d/tool"
//	)
//
//	store := tool.NewMemStore()
//	mgr := tool.NewManager(store, tool.DefaultConfig())
//
//	// Draw a line interactively.
//	mgr.Activate(tool.NewLineTool())
//	mgr.OnPointerDown(draft.Pt(0, 0))
//	mgr.OnPointerDown(draft.Pt(100, 50))
//	// store now holds one committed Line entity.
//
// # Architecture
//
// The module is organized into:
//   - Root package: geometry kernel, affine transforms, entities, styles,
//     fillet/chamfer construction, offset engine. Pure and reentrant.
//   - tool: finite-state drafting tools consuming input events and
//     committing entities to an injected Store.
//   - measure: a read-only measurement probe with history and export.
//   - surface: the preview rendering boundary, with a software
//     reference implementation.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 along +x, increasing toward +y
//
// All kernel and transform functions take radians. Degree conversion is an
// explicit caller responsibility; see [AngleUnit].
//
// # Error Handling
//
// Fallible geometry operations return an explanatory error instead of
// panicking; interactive tools surface these through the host's command
// prompt and leave their inputs untouched.
package draft

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
