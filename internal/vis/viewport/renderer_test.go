package viewport

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc/doctest"
)

func receive(t *testing.T, r *Renderer) Result {
	t.Helper()
	select {
	case res := <-r.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a render result")
		return Result{}
	}
}

func near(a, b gg.RGBA) bool {
	const tol = 0.02
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func centre(r *Renderer) gg.RGBA {
	px := r.Content().ResizeTarget()
	return px.GetPixel(px.Width()/2, px.Height()/2)
}

func TestRequestSizesBothBuffers(t *testing.T) {
	d := doctest.New("a", core.Size{Width: 612, Height: 792})
	r := NewRenderer(nil)

	req, err := r.Request(d, 1, 1.5, 2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	want := core.Viewport{
		CSS:    core.Size{Width: 918, Height: 1188},
		Buffer: core.Size{Width: 1836, Height: 2376},
	}
	if req.Viewport != want {
		t.Errorf("Viewport = %+v, want %+v", req.Viewport, want)
	}
	for name, dc := range map[string]*gg.Context{"content": r.Content(), "overlay": r.Overlay()} {
		if dc.Width() != 1836 || dc.Height() != 2376 {
			t.Errorf("%s buffer = %dx%d, want 1836x2376", name, dc.Width(), dc.Height())
		}
	}

	res := receive(t, r)
	if ok, err := r.Commit(res); !ok || err != nil {
		t.Fatalf("Commit = %v, %v", ok, err)
	}
	if m := r.Content().GetTransform(); m != gg.Identity() {
		t.Errorf("content transform leaked: %+v", m)
	}
	if got := centre(r); !near(got, doctest.Color(1)) {
		t.Errorf("centre pixel = %+v, want page 1 colour", got)
	}
}

func TestFrameHoldsRasterizedPage(t *testing.T) {
	d := doctest.New("a", core.Size{Width: 200, Height: 100})
	r := NewRenderer(nil)
	if _, err := r.Request(d, 1, 1, 1); err != nil {
		t.Fatalf("Request: %v", err)
	}
	res := receive(t, r)
	if ok, err := r.Commit(res); !ok || err != nil {
		t.Fatalf("Commit = %v, %v", ok, err)
	}

	img := r.Frame()
	if img == nil {
		t.Fatal("Frame() = nil after commit")
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("Frame bounds = %v, want 200x100", b)
	}
	c := color.RGBAModel.Convert(img.At(100, 50)).(color.RGBA)
	got := gg.RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: float64(c.A) / 255}
	if !near(got, doctest.Color(1)) {
		t.Errorf("frame centre = %+v, want page 1 colour", got)
	}
}

func TestSupersededRenderNeverDrawn(t *testing.T) {
	tests := []struct {
		name        string
		finishFirst int
	}{
		{"stale finishes last", 3},
		{"stale finishes first", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doctest.Pages("five", 5)
			d.Hold(2)
			d.Hold(3)
			r := NewRenderer(nil)

			if _, err := r.Request(d, 2, 1, 1); err != nil {
				t.Fatal(err)
			}
			req3, err := r.Request(d, 3, 1, 1)
			if err != nil {
				t.Fatal(err)
			}

			second := 5 - tt.finishFirst
			d.Release(tt.finishFirst)
			first := receive(t, r)
			d.Release(second)
			last := receive(t, r)

			for _, res := range []Result{first, last} {
				applied, _ := r.Commit(res)
				if res.Page == 2 && applied {
					t.Fatal("page 2 result was committed after page 3 was requested")
				}
				if res.Page == 3 && !applied {
					t.Fatal("page 3 result was dropped")
				}
				if near(centre(r), doctest.Color(2)) {
					t.Fatal("content buffer shows page 2")
				}
			}

			shown, ok := r.Shown()
			if !ok || shown.Gen != req3.Gen || shown.Page != 3 {
				t.Errorf("Shown() = %+v, %v; want page 3", shown, ok)
			}
			if got := centre(r); !near(got, doctest.Color(3)) {
				t.Errorf("centre pixel = %+v, want page 3 colour", got)
			}
		})
	}
}

func TestFramePendingUntilCommit(t *testing.T) {
	d := doctest.Pages("two", 2)
	d.Hold(1)
	r := NewRenderer(nil)

	if _, err := r.Request(d, 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	if !r.Pending() || r.Frame() != nil {
		t.Fatal("frame available before the render finished")
	}
	d.Release(1)
	r.Commit(receive(t, r))
	if r.Pending() || r.Frame() == nil {
		t.Fatal("frame missing after commit")
	}
}

func TestRequestOutOfRange(t *testing.T) {
	r := NewRenderer(nil)
	if _, err := r.Request(doctest.Pages("one", 1), 2, 1, 1); err == nil {
		t.Error("Request(page 2 of 1) succeeded")
	}
	if r.Latest().Gen != 0 {
		t.Error("failed request advanced the generation")
	}
}

func TestNotifyCalled(t *testing.T) {
	done := make(chan struct{}, 1)
	r := NewRenderer(func() { done <- struct{}{} })
	if _, err := r.Request(doctest.Pages("one", 1), 1, 1, 1); err != nil {
		t.Fatal(err)
	}
	receive(t, r)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("notify not called")
	}
}

func TestCrosshairOverlay(t *testing.T) {
	d := doctest.New("a", core.Size{Width: 100, Height: 100})
	r := NewRenderer(nil)
	if _, err := r.Request(d, 1, 1, 2); err != nil {
		t.Fatal(err)
	}
	if r.OverlayImage() != nil {
		t.Fatal("overlay not empty after request")
	}
	r.SetCrosshair(core.Point{X: 50, Y: 20})
	if r.OverlayImage() == nil {
		t.Fatal("overlay image missing after SetCrosshair")
	}
	px := r.Overlay().ResizeTarget()
	if a := px.GetPixel(100, 150).A; a == 0 {
		t.Error("no crosshair pixel on the vertical guide")
	}
	if a := px.GetPixel(10, 150).A; a != 0 {
		t.Error("crosshair drawn away from the guides")
	}
	if m := r.Overlay().GetTransform(); m != gg.Identity() {
		t.Errorf("overlay transform leaked: %+v", m)
	}
	r.ClearOverlay()
	if r.OverlayImage() != nil {
		t.Error("overlay image present after ClearOverlay")
	}
}
