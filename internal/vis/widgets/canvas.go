package widgets

import (
	"image"
	"image/color"
	"sort"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/draw"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/interact"
)

// pageMargin is the gap around the page in dp.
const pageMargin = 16

// PageCanvas shows the rendered page with its overlay and tooltip and turns
// pointer and touch input into controller calls.
type PageCanvas struct {
	ctrl *control.Controller

	content draw.Layer
	overlay draw.Layer

	// origin of the page in canvas pixels, from the last layout
	origin  image.Point
	touches map[pointer.ID]core.Point
}

// NewPageCanvas creates a new canvas widget.
func NewPageCanvas(ctrl *control.Controller) *PageCanvas {
	return &PageCanvas{
		ctrl:    ctrl,
		touches: make(map[pointer.ID]core.Point),
	}
}

// Layout renders the canvas.
func (c *PageCanvas) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	// Clip to bounds
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, draw.ColorBackdrop)

	snap := c.ctrl.Snapshot()
	dpr := snap.DPR
	c.ctrl.SetView(core.Size{Width: float64(bounds.X) / dpr, Height: float64(bounds.Y) / dpr})

	// Handle pointer events
	c.handlePointerEvents(gtx, bounds)

	snap = c.ctrl.Snapshot()
	if snap.PageCount == 0 {
		c.layoutEmpty(gtx, th)
		return layout.Dimensions{Size: bounds}
	}

	pagePx := image.Pt(int(snap.Viewport.Buffer.Width), int(snap.Viewport.Buffer.Height))
	margin := gtx.Dp(unit.Dp(pageMargin))
	c.origin = image.Pt(margin, margin)
	if free := bounds.X - pagePx.X; free > 2*margin {
		c.origin.X = free / 2
	}
	c.origin = c.origin.Sub(image.Pt(int(snap.Scroll.X*dpr), int(snap.Scroll.Y*dpr)))

	r := c.ctrl.Renderer()
	draw.Sheet(gtx, c.origin, pagePx)
	c.content.Set(r.Frame())
	c.overlay.Set(r.OverlayImage())
	if c.content.Empty() {
		paint.FillShape(gtx.Ops, color.NRGBA{R: 245, G: 245, B: 245, A: 255},
			clip.Rect(image.Rectangle{Min: c.origin, Max: c.origin.Add(pagePx)}).Op())
	}
	c.content.Paint(gtx, c.origin)
	c.overlay.Paint(gtx, c.origin)

	if snap.HasPointer {
		c.layoutTooltip(gtx, th, snap.Pointer, snap.Viewport.CSS, dpr)
	}

	return layout.Dimensions{Size: bounds}
}

func (c *PageCanvas) layoutEmpty(gtx layout.Context, th *material.Theme) {
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		l := material.Label(th, 14, "Open a PDF with the Open button or O")
		l.Color = color.NRGBA{R: 150, G: 155, B: 160, A: 255}
		return l.Layout(gtx)
	})
}

func (c *PageCanvas) layoutTooltip(gtx layout.Context, th *material.Theme, ptr core.Point, page core.Size, dpr float64) {
	text, ok := c.ctrl.Tooltip()
	if !ok {
		return
	}

	// Measure the label before placing it.
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	pad := gtx.Dp(unit.Dp(4))
	dims := layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		l := material.Label(th, 12, text)
		l.Color = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
		return l.Layout(gtx)
	})
	call := macro.Stop()

	tip := core.Size{Width: float64(dims.Size.X) / dpr, Height: float64(dims.Size.Y) / dpr}
	at := interact.PlaceTooltip(ptr, tip, page)
	pos := c.origin.Add(image.Pt(int(at.X*dpr), int(at.Y*dpr)))

	defer op.Offset(pos).Push(gtx.Ops).Pop()
	draw.Box(gtx, image.Rectangle{Max: dims.Size}, pad, color.NRGBA{R: 30, G: 32, B: 36, A: 220})
	call.Add(gtx.Ops)
}

func (c *PageCanvas) handlePointerEvents(gtx layout.Context, bounds image.Point) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	pointer.CursorCrosshair.Add(gtx.Ops)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Leave | pointer.Scroll | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			if pe.Source == pointer.Touch {
				c.handleTouch(gtx, pe)
				continue
			}
			c.handlePointerEvent(pe)
		}
	}
}

func (c *PageCanvas) handlePointerEvent(ev pointer.Event) {
	dpr := c.ctrl.Snapshot().DPR

	switch ev.Kind {
	case pointer.Move, pointer.Drag:
		c.movePointer(ev.Position, dpr)

	case pointer.Leave, pointer.Cancel:
		c.ctrl.PointerLeave()

	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) && c.movePointer(ev.Position, dpr) {
			c.ctrl.Click()
		}

	case pointer.Scroll:
		c.ctrl.Wheel(float64(ev.Scroll.Y)/dpr, ev.Modifiers.Contain(key.ModCtrl))
	}
}

// movePointer forwards a canvas position to the controller and reports
// whether it lies on the page.
func (c *PageCanvas) movePointer(pos f32.Point, dpr float64) bool {
	css, inside := c.toPage(pos, dpr)
	if !inside {
		c.ctrl.PointerLeave()
		return false
	}
	c.ctrl.PointerMove(css)
	return true
}

// toPage converts a canvas pixel position to CSS pixels relative to the
// page's top-left corner.
func (c *PageCanvas) toPage(pos f32.Point, dpr float64) (core.Point, bool) {
	p := core.Point{
		X: (float64(pos.X) - float64(c.origin.X)) / dpr,
		Y: (float64(pos.Y) - float64(c.origin.Y)) / dpr,
	}
	page := c.ctrl.Snapshot().Viewport.CSS
	inside := p.X >= 0 && p.Y >= 0 && p.X <= page.Width && p.Y <= page.Height
	return p, inside
}

func (c *PageCanvas) handleTouch(gtx layout.Context, ev pointer.Event) {
	dpr := c.ctrl.Snapshot().DPR
	pos, _ := c.toPage(ev.Position, dpr)

	switch ev.Kind {
	case pointer.Press:
		c.touches[ev.PointerID] = pos
		c.ctrl.TouchStart(c.activeTouches())

	case pointer.Drag:
		c.touches[ev.PointerID] = pos
		if c.ctrl.TouchMove(c.activeTouches()) {
			gtx.Execute(pointer.GrabCmd{Tag: c, ID: ev.PointerID})
		}

	case pointer.Release:
		delete(c.touches, ev.PointerID)
		c.ctrl.TouchEnd([]interact.Touch{{ID: int(ev.PointerID), Pos: pos}})

	case pointer.Cancel:
		clear(c.touches)
		c.ctrl.TouchCancel()
	}
}

func (c *PageCanvas) activeTouches() []interact.Touch {
	out := make([]interact.Touch, 0, len(c.touches))
	for id, p := range c.touches {
		out = append(out, interact.Touch{ID: int(id), Pos: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
