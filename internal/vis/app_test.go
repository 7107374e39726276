package vis

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
)

func runFrame(a *App, r *input.Router) {
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(1000, 700)),
		Source:      r.Source(),
		Now:         time.Now(),
	}
	a.frame(gtx)
	r.Frame(gtx.Ops)
}

func TestShortcutsAfterToolbarPress(t *testing.T) {
	a := NewApp(control.DefaultOptions(), nil)
	if err := a.start(func() {}, 1); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(a.ctrl.Close)

	r := new(input.Router)
	runFrame(a, r)

	// Press the Open button without releasing; the button takes key focus.
	r.Queue(pointer.Event{
		Kind:     pointer.Press,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(15, 20),
	})
	runFrame(a, r)
	if a.ctrl.Snapshot().HelpOpen {
		t.Fatal("help open before any key")
	}

	r.Queue(key.Event{Name: "H", State: key.Press})
	runFrame(a, r)
	if !a.ctrl.Snapshot().HelpOpen {
		t.Error("H ignored after a toolbar press")
	}

	r.Queue(key.Event{Name: key.NameEscape, State: key.Press})
	runFrame(a, r)
	if a.ctrl.Snapshot().HelpOpen {
		t.Error("Escape ignored after a toolbar press")
	}
}
