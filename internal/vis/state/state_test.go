package state

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

func TestPageBoundsUnderRandomNavigation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for count := 1; count <= 6; count++ {
		p := NewPageState()
		p.Reset(count, false)
		for i := 0; i < 500; i++ {
			switch rng.Intn(3) {
			case 0:
				p.Next()
			case 1:
				p.Previous()
			default:
				p.GoTo(rng.Intn(count+6) - 3)
			}
			if p.Current() < 1 || p.Current() > count {
				t.Fatalf("count=%d: page %d out of [1,%d]", count, p.Current(), count)
			}
		}
	}
}

func TestPageBoundaryNoOps(t *testing.T) {
	p := NewPageState()
	p.Reset(3, false)
	if p.Previous() {
		t.Error("Previous() on first page reported a change")
	}
	p.GoTo(3)
	if p.Next() {
		t.Error("Next() on last page reported a change")
	}
	if got := p.Current(); got != 3 {
		t.Errorf("Current() = %d, want 3", got)
	}
}

func TestPageReset(t *testing.T) {
	tests := []struct {
		name   string
		held   int
		count  int
		retain bool
		want   int
	}{
		{"fresh load", 3, 5, false, 1},
		{"retain in range", 3, 5, true, 3},
		{"retain clamped", 4, 2, true, 2},
		{"retain with nothing held", 0, 5, true, 1},
		{"empty document", 2, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageState()
			if tt.held > 0 {
				p.Reset(10, false)
				p.GoTo(tt.held)
			}
			p.Reset(tt.count, tt.retain)
			if got := p.Current(); got != tt.want {
				t.Errorf("Reset(%d, %v) from page %d: Current() = %d, want %d",
					tt.count, tt.retain, tt.held, got, tt.want)
			}
		})
	}
}

func TestZoomStepRoundTrip(t *testing.T) {
	steps := core.DefaultZoomSteps
	for _, v := range steps[1 : len(steps)-1] {
		z := NewZoomState(steps, v)
		if !z.StepUp() {
			t.Fatalf("StepUp() from %v was a no-op", v)
		}
		if !z.StepDown() {
			t.Fatalf("StepDown() after StepUp() from %v was a no-op", v)
		}
		if z.Scale() != v {
			t.Errorf("StepUp/StepDown from %v ended at %v", v, z.Scale())
		}
	}
}

func TestZoomBoundaries(t *testing.T) {
	steps := core.DefaultZoomSteps
	top := NewZoomState(steps, steps[len(steps)-1])
	if top.StepUp() || top.Scale() != steps[len(steps)-1] {
		t.Errorf("StepUp() at top changed scale to %v", top.Scale())
	}
	bottom := NewZoomState(steps, steps[0])
	if bottom.StepDown() || bottom.Scale() != steps[0] {
		t.Errorf("StepDown() at bottom changed scale to %v", bottom.Scale())
	}
}

func TestZoomFromIntermediateScale(t *testing.T) {
	steps := core.DefaultZoomSteps
	tests := []struct {
		from     float64
		up, down float64
		selected float64
	}{
		{1.65, 2, 1.5, 1.5},
		{1.8, 2, 1.5, 2},
		{0.3, 0.5, 0.3, 0.5},
		{5, 5, 4, 4},
	}

	for _, tt := range tests {
		z := NewZoomState(steps, tt.from)
		if got := z.Selected(); got != tt.selected {
			t.Errorf("Selected() at %v = %v, want %v", tt.from, got, tt.selected)
		}
		z.StepUp()
		if got := z.Scale(); got != tt.up {
			t.Errorf("StepUp() from %v = %v, want %v", tt.from, got, tt.up)
		}
		z = NewZoomState(steps, tt.from)
		z.StepDown()
		if got := z.Scale(); got != tt.down {
			t.Errorf("StepDown() from %v = %v, want %v", tt.from, got, tt.down)
		}
	}
}

func TestSetScaleRejectsInvalid(t *testing.T) {
	z := NewZoomState(core.DefaultZoomSteps, 1)
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if z.SetScale(v) {
			t.Errorf("SetScale(%v) accepted", v)
		}
	}
	if !z.SetScale(1.21) || z.Scale() != 1.21 {
		t.Errorf("SetScale(1.21) -> %v", z.Scale())
	}
}

func TestPointerClampAndNudge(t *testing.T) {
	bounds := core.Size{Width: 100, Height: 50}
	p := NewPointerState()

	if got := p.Move(core.Point{X: 120, Y: -4}, bounds); got != (core.Point{X: 100, Y: 0}) {
		t.Errorf("Move clamped to %v, want {100 0}", got)
	}
	if got := p.Nudge(1, 0, bounds); got != (core.Point{X: 100, Y: 0}) {
		t.Errorf("Nudge right at edge = %v", got)
	}
	if got := p.Nudge(-1, 1, bounds); got != (core.Point{X: 99, Y: 1}) {
		t.Errorf("Nudge(-1, 1) = %v, want {99 1}", got)
	}

	p.Clear()
	if _, ok := p.Position(); ok {
		t.Error("Position() valid after Clear()")
	}
	if got := p.Nudge(0, -1, bounds); got != (core.Point{X: 50, Y: 24}) {
		t.Errorf("Nudge without position = %v, want {50 24}", got)
	}

	p.Reclamp(core.Size{Width: 10, Height: 10})
	if got, _ := p.Position(); got != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Reclamp = %v, want {10 10}", got)
	}
}

func TestScrollClamp(t *testing.T) {
	s := NewScrollState()
	s.SetExtent(core.Size{Width: 800, Height: 1200}, core.Size{Width: 600, Height: 500})

	if !s.By(0, 40) {
		t.Fatal("By(0, 40) reported no change")
	}
	s.By(1000, 1000)
	if got := s.Offset(); got != (core.Point{X: 200, Y: 700}) {
		t.Errorf("Offset() = %v, want {200 700}", got)
	}
	if s.By(10, 10) {
		t.Error("By past the end reported a change")
	}

	s.SetExtent(core.Size{Width: 300, Height: 300}, core.Size{Width: 600, Height: 500})
	if got := s.Offset(); got != (core.Point{}) {
		t.Errorf("Offset() after shrink = %v, want origin", got)
	}
}

func TestSnapshot(t *testing.T) {
	st := NewState(core.DefaultZoomSteps, 1.5, 2, true)
	st.Pages.Reset(5, false)
	st.Pages.GoTo(3)
	st.Status.SetPage(3, 5)
	v := core.NewViewport(core.Size{Width: 612, Height: 792}, 1.5, 2)
	st.SetViewport(v)
	st.Pointer.Move(core.Point{X: 108, Y: 72}, v.CSS)

	snap := st.Snapshot()
	if got := core.FormatCM(snap.Coord); got != "(2.54cm,1.69cm)" {
		t.Errorf("Coord = %s, want (2.54cm,1.69cm)", got)
	}

	want := StatusSnapshot{PageLabel: "Page 3 / 5"}
	if diff := cmp.Diff(want, snap.Status); diff != "" {
		t.Errorf("Status mismatch (-want +got):\n%s", diff)
	}
	if snap.Page != 3 || snap.PageCount != 5 || snap.Selected != 1.5 || !snap.AutoCopy {
		t.Errorf("Snapshot = %+v", snap)
	}

	// Snapshots are copies.
	snap.Steps[0] = 99
	if st.Zoom.Steps()[0] == 99 {
		t.Error("Snapshot shares the step slice")
	}
}

func TestZoomLabel(t *testing.T) {
	if got := ZoomLabel(1.25); got != "125%" {
		t.Errorf("ZoomLabel(1.25) = %q, want 125%%", got)
	}
}
