// Package state manages the viewer state. Every field is mutated through
// the owning type's methods; the UI reads Snapshot values.
package state

import (
	"fmt"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// State holds all viewer state.
type State struct {
	Zoom    *ZoomState
	Pages   *PageState
	Pointer *PointerState
	Scroll  *ScrollState
	Status  *Status

	dpr      float64
	viewport core.Viewport
	helpOpen bool
	autoCopy bool
}

// NewState creates viewer state. dpr is fixed for the lifetime of the state.
func NewState(steps core.ZoomSteps, initialScale, dpr float64, autoCopy bool) *State {
	if !(dpr > 0) {
		dpr = 1
	}
	return &State{
		Zoom:     NewZoomState(steps, initialScale),
		Pages:    NewPageState(),
		Pointer:  NewPointerState(),
		Scroll:   NewScrollState(),
		Status:   NewStatus(),
		dpr:      dpr,
		autoCopy: autoCopy,
	}
}

// DPR returns the device pixel ratio.
func (s *State) DPR() float64 {
	return s.dpr
}

// Viewport returns the viewport of the page being shown.
func (s *State) Viewport() core.Viewport {
	return s.viewport
}

// SetViewport records the viewport of the page being rendered and keeps the
// pointer inside it.
func (s *State) SetViewport(v core.Viewport) {
	s.viewport = v
	s.Pointer.Reclamp(v.CSS)
	s.Scroll.SetExtent(v.CSS, s.Scroll.View())
}

// HelpOpen reports whether the help overlay is visible.
func (s *State) HelpOpen() bool {
	return s.helpOpen
}

// SetHelp shows or hides the help overlay.
func (s *State) SetHelp(open bool) {
	s.helpOpen = open
}

// AutoCopy reports whether clicks copy the coordinate.
func (s *State) AutoCopy() bool {
	return s.autoCopy
}

// SetAutoCopy toggles copy-on-click.
func (s *State) SetAutoCopy(on bool) {
	s.autoCopy = on
}

// Coordinate returns the document coordinate under the pointer.
func (s *State) Coordinate() (core.Point, bool) {
	pos, ok := s.Pointer.Position()
	if !ok {
		return core.Point{}, false
	}
	return core.ToDocumentUnits(pos, s.Zoom.Scale()), true
}

// Snapshot is a read-only copy of the state for the UI layer.
type Snapshot struct {
	Page       int
	PageCount  int
	Scale      float64
	Selected   float64
	Steps      core.ZoomSteps
	DPR        float64
	Viewport   core.Viewport
	Pointer    core.Point
	HasPointer bool
	Coord      core.Point
	Scroll     core.Point
	HelpOpen   bool
	AutoCopy   bool
	Status     StatusSnapshot
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	pos, inside := s.Pointer.Position()
	coord, _ := s.Coordinate()
	return Snapshot{
		Page:       s.Pages.Current(),
		PageCount:  s.Pages.Count(),
		Scale:      s.Zoom.Scale(),
		Selected:   s.Zoom.Selected(),
		Steps:      append(core.ZoomSteps(nil), s.Zoom.Steps()...),
		DPR:        s.dpr,
		Viewport:   s.viewport,
		Pointer:    pos,
		HasPointer: inside,
		Coord:      coord,
		Scroll:     s.Scroll.Offset(),
		HelpOpen:   s.helpOpen,
		AutoCopy:   s.autoCopy,
		Status:     s.Status.Snapshot(),
	}
}

// ZoomLabel formats a scale as a percentage.
func ZoomLabel(scale float64) string {
	return fmt.Sprintf("%.0f%%", scale*100)
}
