package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

// Status bar colors
var (
	colorStatusText  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorStatusError = color.NRGBA{R: 255, G: 120, B: 110, A: 255}
	colorStatusInfo  = color.NRGBA{R: 130, G: 200, B: 140, A: 255}
)

// StatusBar shows the coordinate readout, zoom level and notices.
type StatusBar struct {
	ctrl *control.Controller
}

// NewStatusBar creates a new status bar.
func NewStatusBar(ctrl *control.Controller) *StatusBar {
	return &StatusBar{ctrl: ctrl}
}

// Layout renders the status bar.
func (s *StatusBar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(28))
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	snap := s.ctrl.Snapshot()
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.label(gtx, th, CoordinateLine(snap), colorStatusText)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return s.label(gtx, th, state.ZoomLabel(snap.Scale), colorStatusText)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				switch snap.Status.NoticeKind {
				case state.NoticeError:
					return s.label(gtx, th, snap.Status.Notice, colorStatusError)
				case state.NoticeInfo:
					return s.label(gtx, th, snap.Status.Notice, colorStatusInfo)
				}
				return s.label(gtx, th, snap.Status.Document, colorStatusText)
			}),
		)
	})
}

func (s *StatusBar) label(gtx layout.Context, th *material.Theme, text string, col color.NRGBA) layout.Dimensions {
	l := material.Label(th, 12, text)
	l.Color = col
	l.MaxLines = 1
	return l.Layout(gtx)
}

// CoordinateLine formats the status readout for the pointer.
func CoordinateLine(snap state.Snapshot) string {
	if !snap.HasPointer {
		return "X: -  Y: -"
	}
	return fmt.Sprintf("X: %.2fcm  Y: %.2fcm", snap.Coord.X, snap.Coord.Y)
}
