package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// It rasterizes with golang.org/x/image/vector and draws text with the
// basicfont face. Strokes are built as quad ribbons per flattened
// segment with butt caps, which is preview quality: adequate for tool
// previews, tests and headless export, not for final artwork.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	p := surface.NewPath()
//	p.Circle(400, 300, 100)
//	s.Stroke(p, surface.StrokeStyle{Color: color.RGBA{A: 255}, Width: 2})
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given
// dimensions. Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int { return s.height }

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill fills the given path using the specified style.
func (s *ImageSurface) Fill(path *Path, style FillStyle) {
	if s.closed || path.IsEmpty() || style.Color == nil {
		return
	}
	z := vector.NewRasterizer(s.width, s.height)
	for _, sp := range path.subpaths {
		if len(sp.pts) < 6 {
			continue
		}
		z.MoveTo(float32(sp.pts[0]), float32(sp.pts[1]))
		for i := 2; i < len(sp.pts); i += 2 {
			z.LineTo(float32(sp.pts[i]), float32(sp.pts[i+1]))
		}
		z.ClosePath()
	}
	z.Draw(s.img, s.img.Bounds(), image.NewUniform(style.Color), image.Point{})
}

// Stroke strokes the given path using the specified style.
func (s *ImageSurface) Stroke(path *Path, style StrokeStyle) {
	if s.closed || path.IsEmpty() || style.Color == nil {
		return
	}
	p := path
	if len(style.DashPattern) > 0 {
		p = path.dashed(style.DashPattern, style.DashOffset)
	}
	width := style.Width
	if width < 1 {
		width = 1
	}
	half := width / 2

	z := vector.NewRasterizer(s.width, s.height)
	for _, sp := range p.subpaths {
		pts := sp.pts
		if sp.closed && len(pts) >= 4 {
			pts = append(append([]float64{}, pts...), pts[0], pts[1])
		}
		for i := 2; i < len(pts); i += 2 {
			x0, y0 := pts[i-2], pts[i-1]
			x1, y1 := pts[i], pts[i+1]
			length := math.Hypot(x1-x0, y1-y0)
			if length == 0 {
				continue
			}
			// Perpendicular half-width offset forms the segment quad.
			nx := -(y1 - y0) / length * half
			ny := (x1 - x0) / length * half
			z.MoveTo(float32(x0+nx), float32(y0+ny))
			z.LineTo(float32(x1+nx), float32(y1+ny))
			z.LineTo(float32(x1-nx), float32(y1-ny))
			z.LineTo(float32(x0-nx), float32(y0-ny))
			z.ClosePath()
		}
	}
	z.Draw(s.img, s.img.Bounds(), image.NewUniform(style.Color), image.Point{})
}

// DrawText draws a short label with its baseline origin at (x, y) using
// the basicfont face.
func (s *ImageSurface) DrawText(text string, x, y float64, c color.Color) {
	if s.closed || text == "" || c == nil {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round(y * 64)),
		},
	}
	d.DrawString(text)
}

// Flush ensures all pending drawing operations are complete.
// CPU rendering is synchronous, so this is a no-op.
func (s *ImageSurface) Flush() error { return nil }

// Snapshot returns the current surface contents as an RGBA image.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the surface. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

// Verify ImageSurface implements Surface.
var _ Surface = (*ImageSurface)(nil)
