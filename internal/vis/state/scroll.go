package state

import (
	"math"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// ScrollState is the offset of the page inside the visible area, in CSS
// pixels.
type ScrollState struct {
	offset  core.Point
	content core.Size
	view    core.Size
}

// NewScrollState creates a scroll state at the origin.
func NewScrollState() *ScrollState {
	return &ScrollState{}
}

// Offset returns the current offset.
func (s *ScrollState) Offset() core.Point {
	return s.offset
}

// View returns the size of the visible area.
func (s *ScrollState) View() core.Size {
	return s.view
}

// SetExtent updates the content and view sizes and clamps the offset.
func (s *ScrollState) SetExtent(content, view core.Size) {
	s.content, s.view = content, view
	s.offset = s.clamp(s.offset)
}

// By scrolls by (dx, dy). It reports whether the offset changed.
func (s *ScrollState) By(dx, dy float64) bool {
	next := s.clamp(s.offset.Add(core.Point{X: dx, Y: dy}))
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// PageStep returns the distance of a PageUp/PageDown scroll.
func (s *ScrollState) PageStep() float64 {
	return math.Max(s.view.Height*0.9, 1)
}

// Reset scrolls back to the origin.
func (s *ScrollState) Reset() {
	s.offset = core.Point{}
}

func (s *ScrollState) clamp(p core.Point) core.Point {
	maxX := math.Max(0, s.content.Width-s.view.Width)
	maxY := math.Max(0, s.content.Height-s.view.Height)
	return core.Point{
		X: math.Max(0, math.Min(p.X, maxX)),
		Y: math.Max(0, math.Min(p.Y, maxY)),
	}
}
