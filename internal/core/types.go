// Package core defines the geometry and unit model of the coordinate picker.
package core

import "math"

// Point is a 2D position. Depending on context it is in CSS pixels,
// backing-buffer pixels or document centimetres.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Clamp limits p to the rectangle [0,s.Width]x[0,s.Height].
func (s Size) Clamp(p Point) Point {
	return Point{
		X: math.Max(0, math.Min(p.X, s.Width)),
		Y: math.Max(0, math.Min(p.Y, s.Height)),
	}
}

// Viewport holds the derived sizes of a rendered page.
type Viewport struct {
	CSS    Size // page size in CSS pixels (natural size x scale)
	Buffer Size // backing buffer size in device pixels (CSS x DPR, rounded up)
}

// NewViewport derives the viewport of a page of the given natural size.
func NewViewport(natural Size, scale, dpr float64) Viewport {
	css := natural.Scale(scale)
	return Viewport{
		CSS: css,
		Buffer: Size{
			Width:  math.Ceil(css.Width * dpr),
			Height: math.Ceil(css.Height * dpr),
		},
	}
}

// BufferPixels returns the integer buffer dimensions, at least 1x1.
func (v Viewport) BufferPixels() (int, int) {
	w, h := int(v.Buffer.Width), int(v.Buffer.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
