package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/draw"
)

// Bindings lists the keyboard and touch controls shown in the help panel.
var Bindings = [][2]string{
	{"O", "Open a PDF"},
	{"R", "Reload the current file, keeping the page"},
	{"P / Ctrl+Left", "Previous page"},
	{"N / Ctrl+Right", "Next page"},
	{"+ / =", "Zoom in one level"},
	{"-", "Zoom out one level"},
	{"Ctrl+Wheel", "Zoom in small steps"},
	{"Alt+Arrows", "Move the crosshair by one pixel"},
	{"Arrows / PgUp / PgDn", "Scroll"},
	{"Ctrl+Up / Ctrl+Down", "Scroll a fixed step"},
	{"Click", "Copy the coordinate (when enabled)"},
	{"Swipe", "Change page"},
	{"Pinch", "Zoom"},
	{"H / Esc", "Show / hide this help"},
}

// Help is the key binding overlay.
type Help struct {
	ctrl     *control.Controller
	closeBtn widget.Clickable
}

// NewHelp creates the help overlay.
func NewHelp(ctrl *control.Controller) *Help {
	return &Help{ctrl: ctrl}
}

// Layout renders the overlay when help is open.
func (h *Help) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	if !h.ctrl.Snapshot().HelpOpen {
		return layout.Dimensions{}
	}
	for h.closeBtn.Clicked(gtx) {
		h.ctrl.SetHelp(false)
	}

	// Dim the page behind the panel
	bounds := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, color.NRGBA{A: 140}, clip.Rect(image.Rectangle{Max: bounds}).Op())

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				draw.Box(gtx, image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(unit.Dp(6)),
					color.NRGBA{R: 40, G: 43, B: 48, A: 250})
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return h.layoutRows(gtx, th)
				})
			},
		)
	})
}

func (h *Help) layoutRows(gtx layout.Context, th *material.Theme) layout.Dimensions {
	rows := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.H6(th, "Controls")
			l.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
	}
	for _, b := range Bindings {
		b := b
		rows = append(rows, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Min.X = gtx.Dp(unit.Dp(160))
					l := material.Label(th, 12, b[0])
					l.Color = color.NRGBA{R: 100, G: 180, B: 255, A: 255}
					return l.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.Label(th, 12, b[1])
					l.Color = color.NRGBA{R: 210, G: 210, B: 210, A: 255}
					return l.Layout(gtx)
				}),
			)
		}))
	}
	rows = append(rows,
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(th, &h.closeBtn, "Close").Layout(gtx)
		}),
	)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}
