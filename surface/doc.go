// Package surface provides the rendering boundary of the drafting core.
//
// Surface is the target abstraction that decouples preview drawing from
// its implementation. Drafting tools draw their in-progress geometry onto
// a Surface once per external frame; hosts supply whichever backend they
// render with.
//
// The package ships one reference implementation, ImageSurface, a
// CPU-based backend on golang.org/x/image/vector suitable for previews,
// tests and headless export. GPU or canvas-bound backends implement the
// same interface externally.
//
// Surfaces are NOT thread-safe. The drafting core is single-threaded and
// calls every surface method from the interaction thread.
package surface
