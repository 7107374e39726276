package state

import "github.com/elektrokombinacija/pdfcoord/internal/core"

// PointerState tracks the last pointer position over the page, in CSS
// pixels relative to the page's top-left corner.
type PointerState struct {
	pos    core.Point
	inside bool
}

// NewPointerState creates a pointer state with no position.
func NewPointerState() *PointerState {
	return &PointerState{}
}

// Position returns the clamped position and whether the pointer is over the
// page.
func (p *PointerState) Position() (core.Point, bool) {
	return p.pos, p.inside
}

// Move records a new position clamped to bounds.
func (p *PointerState) Move(pos core.Point, bounds core.Size) core.Point {
	p.pos = bounds.Clamp(pos)
	p.inside = true
	return p.pos
}

// Nudge shifts the position by (dx, dy) CSS pixels, clamped to bounds.
// Without a position it starts from the page centre.
func (p *PointerState) Nudge(dx, dy float64, bounds core.Size) core.Point {
	from := p.pos
	if !p.inside {
		from = core.Point{X: bounds.Width / 2, Y: bounds.Height / 2}
	}
	return p.Move(from.Add(core.Point{X: dx, Y: dy}), bounds)
}

// Reclamp keeps a held position inside new bounds after a resize.
func (p *PointerState) Reclamp(bounds core.Size) {
	if p.inside {
		p.pos = bounds.Clamp(p.pos)
	}
}

// Clear forgets the position, e.g. when the pointer leaves the page.
func (p *PointerState) Clear() {
	p.pos = core.Point{}
	p.inside = false
}
