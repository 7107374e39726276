package state

import (
	"math"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// ZoomState owns the current scale and the selectable zoom levels.
type ZoomState struct {
	steps core.ZoomSteps
	scale float64
}

// NewZoomState creates a zoom state at initial, which must be positive.
func NewZoomState(steps core.ZoomSteps, initial float64) *ZoomState {
	return &ZoomState{steps: steps, scale: initial}
}

// Scale returns the current scale.
func (z *ZoomState) Scale() float64 {
	return z.scale
}

// Steps returns the selectable levels.
func (z *ZoomState) Steps() core.ZoomSteps {
	return z.steps
}

// Selected returns the level a selector should highlight: the current scale
// if it is a level, otherwise the nearest one.
func (z *ZoomState) Selected() float64 {
	return z.steps.Nearest(z.scale)
}

// SetScale sets any positive finite scale. It reports whether the scale
// changed.
func (z *ZoomState) SetScale(v float64) bool {
	if !(v > 0) || math.IsInf(v, 0) || v == z.scale {
		return false
	}
	z.scale = v
	return true
}

// StepUp moves to the next level above the current scale. From a scale
// between two levels that is the upper neighbour. No-op at the top.
func (z *ZoomState) StepUp() bool {
	next, ok := z.steps.Above(z.scale)
	if !ok {
		return false
	}
	return z.SetScale(next)
}

// StepDown moves to the next level below the current scale. From a scale
// between two levels that is the lower neighbour. No-op at the bottom.
func (z *ZoomState) StepDown() bool {
	prev, ok := z.steps.Below(z.scale)
	if !ok {
		return false
	}
	return z.SetScale(prev)
}
