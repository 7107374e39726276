// Package draw renders the viewer's overlay into pixel buffers and paints
// buffers and the tooltip into Gio operations.
package draw

import (
	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// Overlay colors
var (
	ColorCrosshair = gg.RGBA2(0.85, 0.15, 0.2, 0.75)
	ColorMarker    = gg.RGBA2(0.85, 0.15, 0.2, 1)
)

// ClearOverlay makes the whole overlay buffer transparent.
func ClearOverlay(dc *gg.Context) {
	dc.Clear()
}

// Crosshair redraws the overlay with guide lines through p. p and css are in
// CSS pixels; the buffer is dpr times larger.
func Crosshair(dc *gg.Context, p core.Point, css core.Size, dpr float64) {
	dc.Clear()
	dc.Push()
	defer dc.Pop()
	dc.Scale(dpr, dpr)

	dc.SetColor(ColorCrosshair.Color())
	dc.SetLineWidth(1)
	dc.DrawLine(p.X, 0, p.X, css.Height)
	dc.DrawLine(0, p.Y, css.Width, p.Y)
	_ = dc.Stroke()

	dc.SetColor(ColorMarker.Color())
	dc.DrawCircle(p.X, p.Y, 2.5)
	_ = dc.Fill()
}
