package interact

import (
	"math"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// Tooltip placement in CSS pixels.
const (
	TooltipOffset = 12.0
	TooltipMargin = 4.0
)

// PlaceTooltip returns the top-left corner of a tooltip of size tip next to
// the pointer inside bounds. The tooltip goes below and to the right of the
// pointer, flips to the other side of an axis where it would overflow and is
// then kept at least TooltipMargin from the edges.
func PlaceTooltip(pointer core.Point, tip, bounds core.Size) core.Point {
	return core.Point{
		X: placeAxis(pointer.X, tip.Width, bounds.Width),
		Y: placeAxis(pointer.Y, tip.Height, bounds.Height),
	}
}

func placeAxis(p, size, limit float64) float64 {
	pos := p + TooltipOffset
	if pos+size > limit-TooltipMargin {
		pos = p - TooltipOffset - size
	}
	hi := limit - size - TooltipMargin
	pos = math.Min(pos, hi)
	return math.Max(pos, TooltipMargin)
}
