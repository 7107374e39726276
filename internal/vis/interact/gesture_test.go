package interact

import (
	"testing"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

func touch(id int, x, y float64) Touch {
	return Touch{ID: id, Pos: core.Point{X: x, Y: y}}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		endX   float64
		want   Intent
	}{
		{"left swipe", 100, 40, IntentNextPage},
		{"right swipe", 100, 160, IntentPreviousPage},
		{"short left", 100, 50, IntentTap},
		{"short right", 100, 150, IntentTap},
		{"tap", 100, 100, IntentTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Recognizer
			r.Start([]Touch{touch(1, tt.startX, 200)})
			if r.Phase() != Tracking {
				t.Fatalf("Phase() = %v, want tracking", r.Phase())
			}
			got := r.End([]Touch{touch(1, tt.endX, 210)})
			if got != tt.want {
				t.Errorf("swipe %v -> %v = %v, want %v", tt.startX, tt.endX, got, tt.want)
			}
			if r.Phase() != Idle {
				t.Errorf("Phase() after End = %v, want idle", r.Phase())
			}
		})
	}
}

func TestTapNeedsTracking(t *testing.T) {
	var r Recognizer
	if got := r.End([]Touch{touch(1, 100, 0)}); got != IntentNone {
		t.Errorf("End without Start = %v, want none", got)
	}
	r.Start([]Touch{touch(1, 0, 0), touch(2, 100, 0)})
	if got := r.End([]Touch{touch(2, 100, 0)}); got != IntentNone {
		t.Errorf("End of pinch = %v, want none", got)
	}
	r.Start([]Touch{touch(1, 100, 0)})
	r.Cancel()
	if got := r.End([]Touch{touch(1, 100, 0)}); got != IntentNone {
		t.Errorf("End after Cancel = %v, want none", got)
	}
}

func TestSwipeNeedsSingleChangedTouch(t *testing.T) {
	var r Recognizer
	r.Start([]Touch{touch(1, 100, 0)})
	if got := r.End([]Touch{touch(1, 10, 0), touch(2, 10, 0)}); got != IntentNone {
		t.Errorf("End with two changed touches = %v, want none", got)
	}
}

func TestPinchRatchet(t *testing.T) {
	var r Recognizer
	r.Start([]Touch{touch(1, 0, 0), touch(2, 100, 0)})
	if r.Phase() != Pinching {
		t.Fatalf("Phase() = %v, want pinching", r.Phase())
	}

	// Baseline resets at 111, 123 and 136.
	distances := []float64{102, 105, 108, 111, 115, 119, 123, 126, 130, 136, 140}
	zoomIns := 0
	for _, d := range distances {
		intent, suppress := r.Move([]Touch{touch(1, 0, 0), touch(2, d, 0)})
		if !suppress {
			t.Errorf("two-touch move at %v not suppressed", d)
		}
		switch intent {
		case IntentZoomIn:
			zoomIns++
		case IntentNone:
		default:
			t.Errorf("Move at %v = %v", d, intent)
		}
	}
	if zoomIns != 3 {
		t.Errorf("zoom-in intents = %d, want 3", zoomIns)
	}
}

func TestPinchOut(t *testing.T) {
	var r Recognizer
	r.Start([]Touch{touch(1, 0, 0), touch(2, 0, 200)})
	got := []Intent{}
	for _, d := range []float64{190, 179, 170, 160} {
		in, _ := r.Move([]Touch{touch(1, 0, 0), touch(2, 0, d)})
		got = append(got, in)
	}
	want := []Intent{IntentNone, IntentZoomOut, IntentNone, IntentZoomOut}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTouchCountChangeRestartsSession(t *testing.T) {
	var r Recognizer
	r.Start([]Touch{touch(1, 300, 0)})
	r.Start([]Touch{touch(1, 300, 0), touch(2, 400, 0)})
	if r.Phase() != Pinching {
		t.Fatalf("Phase() = %v, want pinching", r.Phase())
	}
	if got := r.End([]Touch{touch(2, 0, 0)}); got != IntentNone {
		t.Errorf("End of pinch = %v, want none", got)
	}

	r.Start([]Touch{touch(1, 0, 0), touch(2, 10, 0), touch(3, 20, 0)})
	if r.Phase() != Idle {
		t.Errorf("three touches: Phase() = %v, want idle", r.Phase())
	}
}

func TestSingleTouchMoveNotSuppressed(t *testing.T) {
	var r Recognizer
	r.Start([]Touch{touch(1, 0, 0)})
	if in, suppress := r.Move([]Touch{touch(1, 30, 0)}); in != IntentNone || suppress {
		t.Errorf("Move(1 touch) = %v, %v", in, suppress)
	}
}

func TestApplyZoomClamps(t *testing.T) {
	if got := ApplyZoom(9.5, IntentZoomIn); got != MaxScale {
		t.Errorf("ApplyZoom(9.5, in) = %v, want %v", got, MaxScale)
	}
	if got := ApplyZoom(1.1, IntentZoomOut); got < 0.999 || got > 1.001 {
		t.Errorf("ApplyZoom(1.1, out) = %v, want 1", got)
	}
	if got := WheelIntent(3); got != IntentZoomOut {
		t.Errorf("WheelIntent(3) = %v, want zoom-out", got)
	}
}
