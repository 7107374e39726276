// Package widgets provides Gio UI widgets for the viewer.
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
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

// Toolbar provides control buttons.
type Toolbar struct {
	ctrl *control.Controller

	// File and navigation
	openBtn   widget.Clickable
	reloadBtn widget.Clickable
	prevBtn   widget.Clickable
	nextBtn   widget.Clickable

	// Zoom selector, one button per level
	zoomOutBtn widget.Clickable
	zoomInBtn  widget.Clickable
	levelBtns  []widget.Clickable

	autoCopy widget.Bool
	helpBtn  widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(ctrl *control.Controller) *Toolbar {
	snap := ctrl.Snapshot()
	t := &Toolbar{
		ctrl:      ctrl,
		levelBtns: make([]widget.Clickable, len(snap.Steps)),
	}
	t.autoCopy.Value = snap.AutoCopy
	return t
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(44))

	// Background
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	// Handle button clicks
	t.handleClicks(gtx)
	snap := t.ctrl.Snapshot()

	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			// File controls
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutFileControls(gtx, th, snap)
			}),

			// Separator
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutSeparator(gtx)
			}),

			// Page navigation
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutPageControls(gtx, th, snap)
			}),

			// Separator
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutSeparator(gtx)
			}),

			// Zoom selector
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutZoomControls(gtx, th, snap)
			}),

			// Spacer
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),

			// Preferences and help
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				cb := material.CheckBox(th, &t.autoCopy, "Copy on click")
				cb.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
				cb.IconColor = color.NRGBA{R: 100, G: 180, B: 255, A: 255}
				cb.TextSize = 12
				return cb.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.modeButton(gtx, th, &t.helpBtn, "?", snap.HelpOpen)
			}),
		)
	})
}

func (t *Toolbar) layoutFileControls(gtx layout.Context, th *material.Theme, snap state.Snapshot) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.textButton(gtx, th, &t.openBtn, "Open")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if snap.PageCount == 0 {
				return layout.Dimensions{}
			}
			return t.textButton(gtx, th, &t.reloadBtn, "Reload")
		}),
	)
}

func (t *Toolbar) layoutPageControls(gtx layout.Context, th *material.Theme, snap state.Snapshot) layout.Dimensions {
	label := "No document"
	if snap.Status.PageLabel != "" {
		label = snap.Status.PageLabel
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.iconButton(gtx, th, &t.prevBtn, "<")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Label(th, 12, label)
			l.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.iconButton(gtx, th, &t.nextBtn, ">")
		}),
	)
}

func (t *Toolbar) layoutZoomControls(gtx layout.Context, th *material.Theme, snap state.Snapshot) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.iconButton(gtx, th, &t.zoomOutBtn, "-")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
	}
	for i, level := range snap.Steps {
		i, level := i, level
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.modeButton(gtx, th, &t.levelBtns[i], state.ZoomLabel(level), level == snap.Selected)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		)
	}
	children = append(children,
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.iconButton(gtx, th, &t.zoomInBtn, "+")
		}),
	)
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) iconButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, icon string) layout.Dimensions {
	return t.buttonBase(gtx, th, btn, icon, false)
}

func (t *Toolbar) textButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	return t.buttonBase(gtx, th, btn, text, false)
}

func (t *Toolbar) modeButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, icon string, active bool) layout.Dimensions {
	return t.buttonBase(gtx, th, btn, icon, active)
}

func (t *Toolbar) buttonBase(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				rect := image.Rectangle{Max: gtx.Constraints.Min}
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: gtx.Dp(unit.Dp(28)), Y: gtx.Dp(unit.Dp(26))}
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, text)
						label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
						return label.Layout(gtx)
					})
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	// File
	for t.openBtn.Clicked(gtx) {
		t.ctrl.Open()
	}
	for t.reloadBtn.Clicked(gtx) {
		_ = t.ctrl.Reload()
	}

	// Navigation
	for t.prevBtn.Clicked(gtx) {
		t.ctrl.PreviousPage()
	}
	for t.nextBtn.Clicked(gtx) {
		t.ctrl.NextPage()
	}

	// Zoom
	for t.zoomOutBtn.Clicked(gtx) {
		t.ctrl.ZoomOut()
	}
	for t.zoomInBtn.Clicked(gtx) {
		t.ctrl.ZoomIn()
	}
	steps := t.ctrl.Snapshot().Steps
	for i := range t.levelBtns {
		for t.levelBtns[i].Clicked(gtx) {
			t.ctrl.SetScale(steps[i])
		}
	}

	// Preferences
	if t.autoCopy.Update(gtx) {
		t.ctrl.SetAutoCopy(t.autoCopy.Value)
	}
	for t.helpBtn.Clicked(gtx) {
		t.ctrl.SetHelp(!t.ctrl.Snapshot().HelpOpen)
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
