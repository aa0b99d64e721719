package draft

import (
	"image/color"
	"math"
)

// Style describes how an entity is drawn: stroke color, width, dash
// pattern and optional fill. Styles are attached to entities but never
// interpreted by the kernel; the rendering collaborator owns their
// meaning.
type Style struct {
	// Stroke is the stroke color.
	Stroke color.RGBA

	// StrokeWidth is the stroke width in drawing-space units.
	StrokeWidth float64

	// Dash contains alternating dash/gap lengths. nil or empty means a
	// solid stroke. Use NewDash to normalize a pattern.
	Dash []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64

	// Fill is the fill color, used only when Filled is set.
	Fill color.RGBA

	// Filled enables filling for closed shapes.
	Filled bool
}

// DefaultStyle returns the style applied to entities when the host
// supplies none: solid black stroke, width 1, no fill.
func DefaultStyle() Style {
	return Style{
		Stroke:      color.RGBA{A: 255},
		StrokeWidth: 1,
	}
}

// WithStroke returns a copy with the specified stroke color.
func (s Style) WithStroke(c color.RGBA) Style {
	s.Stroke = c
	return s
}

// WithDash returns a copy with the specified dash pattern.
func (s Style) WithDash(lengths ...float64) Style {
	s.Dash = NewDash(lengths...)
	return s
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by absolute value. If an odd number of
// elements is provided, the pattern is duplicated to an even length
// (e.g. [5] becomes [5, 5]).
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) []float64 {
	if len(lengths) == 0 {
		return nil
	}
	any := false
	for _, l := range lengths {
		if l != 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	normalized := make([]float64, 0, len(lengths)*2)
	for _, l := range lengths {
		normalized = append(normalized, math.Abs(l))
	}
	if len(normalized)%2 == 1 {
		normalized = append(normalized, normalized...)
	}
	return normalized
}
