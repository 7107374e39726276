// Package interact turns raw input into viewer intents: touch gestures,
// key routing, wheel zoom and tooltip placement.
package interact

import (
	"math"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// Gesture thresholds.
const (
	SwipeThreshold = 50.0 // CSS px of horizontal travel
	PinchStep      = 1.1  // multiplicative zoom per ratchet step
	pinchIn        = 1.1
	pinchOut       = 0.9
)

// Intent is a discrete action recognized from input.
type Intent int

const (
	IntentNone Intent = iota
	IntentPreviousPage
	IntentNextPage
	IntentZoomIn
	IntentZoomOut
	// IntentTap is a single touch lifted without swiping; the release
	// position acts as a click.
	IntentTap
)

func (i Intent) String() string {
	switch i {
	case IntentPreviousPage:
		return "previous-page"
	case IntentNextPage:
		return "next-page"
	case IntentZoomIn:
		return "zoom-in"
	case IntentZoomOut:
		return "zoom-out"
	case IntentTap:
		return "tap"
	default:
		return "none"
	}
}

// Touch is one active contact in CSS pixels.
type Touch struct {
	ID  int
	Pos core.Point
}

// Phase is the state of a gesture session.
type Phase int

const (
	Idle Phase = iota
	Tracking
	Pinching
)

func (p Phase) String() string {
	switch p {
	case Tracking:
		return "tracking"
	case Pinching:
		return "pinching"
	default:
		return "idle"
	}
}

// Recognizer is the touch state machine. The zero value is Idle.
//
// Only the field belonging to the current phase is meaningful: startX while
// Tracking, baseline while Pinching.
type Recognizer struct {
	phase    Phase
	startX   float64
	baseline float64
}

// Phase returns the current session phase.
func (r *Recognizer) Phase() Phase {
	return r.phase
}

// Start handles a touch-start. touches is the full set of active contacts;
// any session in progress is discarded.
func (r *Recognizer) Start(touches []Touch) {
	*r = Recognizer{}
	switch len(touches) {
	case 1:
		r.phase = Tracking
		r.startX = touches[0].Pos.X
	case 2:
		r.phase = Pinching
		r.baseline = distance(touches[0].Pos, touches[1].Pos)
	}
}

// Move handles a touch-move with the active contacts. It returns the zoom
// intent, if any, and whether the platform's default handling must be
// suppressed, which is always the case for two-contact moves.
func (r *Recognizer) Move(touches []Touch) (Intent, bool) {
	if len(touches) != 2 {
		return IntentNone, false
	}
	if r.phase != Pinching {
		return IntentNone, true
	}
	d := distance(touches[0].Pos, touches[1].Pos)
	if r.baseline <= 0 {
		r.baseline = d
		return IntentNone, true
	}
	switch ratio := d / r.baseline; {
	case ratio > pinchIn:
		r.baseline = d
		return IntentZoomIn, true
	case ratio < pinchOut:
		r.baseline = d
		return IntentZoomOut, true
	}
	return IntentNone, true
}

// End handles a touch-end. changed holds the contacts that were lifted.
// A single contact that travelled no further than the swipe threshold is a
// tap. The session always returns to Idle.
func (r *Recognizer) End(changed []Touch) Intent {
	phase, startX := r.phase, r.startX
	*r = Recognizer{}
	if phase != Tracking || len(changed) != 1 {
		return IntentNone
	}
	dx := changed[0].Pos.X - startX
	switch {
	case dx > SwipeThreshold:
		return IntentPreviousPage
	case dx < -SwipeThreshold:
		return IntentNextPage
	}
	return IntentTap
}

// Cancel abandons the session.
func (r *Recognizer) Cancel() {
	*r = Recognizer{}
}

func distance(a, b core.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
