package interact

// Continuous zoom limits shared by pinch and wheel zoom.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// ClampScale limits a continuous scale to [MinScale, MaxScale].
func ClampScale(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}

// ApplyZoom returns the scale after a zoom intent. Zoom-in multiplies by
// PinchStep and zoom-out divides by it.
func ApplyZoom(scale float64, in Intent) float64 {
	switch in {
	case IntentZoomIn:
		return ClampScale(scale * PinchStep)
	case IntentZoomOut:
		return ClampScale(scale / PinchStep)
	}
	return scale
}

// WheelIntent maps a Ctrl+wheel scroll amount to a zoom intent: scrolling
// down zooms out and scrolling up zooms in.
func WheelIntent(scrollY float64) Intent {
	switch {
	case scrollY > 0:
		return IntentZoomOut
	case scrollY < 0:
		return IntentZoomIn
	}
	return IntentNone
}
