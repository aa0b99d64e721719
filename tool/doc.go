// Package tool implements the interactive drafting tool machine.
//
// Each primitive type has one finite-state tool (line, arc, polyline,
// fillet, dimension) consuming pointer and keyboard events, producing
// preview geometry, and committing finished entities to an injected
// Store. The set of tools is closed and dispatched through the single
// Tool interface; there is no inheritance hierarchy.
//
// # Lifecycle
//
// Tools move through Idle (no temp points), Collecting (some points
// captured) and Ready (about to commit). Commit and cancel both reset to
// Idle so another entity of the same kind can be drawn immediately.
// Escape unwinds one temp point per press; with no points left the tool
// exits to the host's default tool.
//
// # Threading
//
// Everything here is single-threaded and event-driven: all methods run
// synchronously on the interaction thread, one input event at a time.
// The only shared mutable resource is the Store; tools treat every store
// read as potentially stale across input events and re-validate ids
// captured earlier in an interaction.
//
// # Modifier keys
//
// Pointer events carry no modifier state of their own. The host keeps
// Context.Modifiers current (on every pointer or key event); tools that
// need a modifier (arc angle snap, fillet radius-edit chord) sample it
// when the pointer event arrives and record it in their own state, so
// commit never reaches back into an event it was not passed.
package tool
