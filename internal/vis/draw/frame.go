package draw

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Canvas colors
var (
	ColorBackdrop = color.NRGBA{R: 25, G: 28, B: 32, A: 255}
	ColorShadow   = color.NRGBA{R: 0, G: 0, B: 0, A: 90}
)

// Layer caches the Gio image op of a pixel buffer. A new op is created only
// when the buffer image changes.
type Layer struct {
	img image.Image
	op  paint.ImageOp
}

// Set replaces the layer image. A nil image clears the layer.
func (l *Layer) Set(img image.Image) {
	if img == l.img {
		return
	}
	l.img = img
	if img != nil {
		l.op = paint.NewImageOp(img)
	}
}

// Empty reports whether the layer has no image.
func (l *Layer) Empty() bool {
	return l.img == nil
}

// Paint draws the layer at offset with its pixels mapped 1:1 to device
// pixels.
func (l *Layer) Paint(gtx layout.Context, offset image.Point) {
	if l.img == nil {
		return
	}
	defer op.Offset(offset).Push(gtx.Ops).Pop()
	l.op.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// Sheet draws a drop shadow behind a page of the given pixel size.
func Sheet(gtx layout.Context, offset image.Point, size image.Point) {
	r := image.Rectangle{Min: offset, Max: offset.Add(size)}.Add(image.Pt(3, 3))
	paint.FillShape(gtx.Ops, ColorShadow, clip.Rect(r).Op())
}

// Box fills a rounded rectangle, used for the tooltip and help panel.
func Box(gtx layout.Context, r image.Rectangle, radius int, col color.NRGBA) {
	rr := clip.RRect{Rect: r, SE: radius, SW: radius, NW: radius, NE: radius}
	paint.FillShape(gtx.Ops, col, rr.Op(gtx.Ops))
}
