// Package vis implements the Gio-based PDF coordinate picker.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	opts    control.Options
	initial *doc.Source

	ctrl    *control.Controller
	theme   *material.Theme
	toolbar *widgets.Toolbar
	canvas  *widgets.PageCanvas
	status  *widgets.StatusBar
	help    *widgets.Help
}

// NewApp creates a new viewer. initial, if not nil, is loaded on the first
// frame.
func NewApp(opts control.Options, initial *doc.Source) *App {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	return &App{
		opts:    opts,
		initial: initial,
		theme:   th,
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			if a.ctrl != nil {
				a.ctrl.Close()
			}
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// The device pixel ratio is only known once a frame arrives.
			if a.ctrl == nil {
				if err := a.start(w.Invalidate, float64(gtx.Metric.PxPerDp)); err != nil {
					return err
				}
			}

			if a.frame(gtx) {
				w.Invalidate()
			}
			e.Frame(gtx.Ops)
		}
	}
}

// frame handles shortcuts and lays out the window. It reports whether
// background work completed since the last frame.
func (a *App) frame(gtx layout.Context) bool {
	dirty := a.ctrl.Poll()

	// Shortcuts are window-wide. Toolbar buttons take key focus on click,
	// so the filter is not bound to a focus tag.
	for {
		ev, ok := gtx.Event(key.Filter{Optional: key.ModCtrl | key.ModShift | key.ModAlt})
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			a.ctrl.Key(ke.Name, ke.Modifiers)
		}
	}

	a.layout(gtx)
	return dirty
}

func (a *App) start(notify func(), dpr float64) error {
	ctrl, err := control.New(a.opts, dpr, control.Deps{Notify: notify})
	if err != nil {
		return err
	}
	a.ctrl = ctrl
	a.toolbar = widgets.NewToolbar(ctrl)
	a.canvas = widgets.NewPageCanvas(ctrl)
	a.status = widgets.NewStatusBar(ctrl)
	a.help = widgets.NewHelp(ctrl)

	logging.Logger().Debug("viewer started", "dpr", dpr)
	if a.initial != nil {
		// Failures are shown in the status bar.
		_ = ctrl.Load(*a.initial)
	}
	return nil
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Page with the help overlay on top
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					return a.canvas.Layout(gtx, a.theme)
				}),
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					return a.help.Layout(gtx, a.theme)
				}),
			)
		}),
		// Status bar at bottom
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.status.Layout(gtx, a.theme)
		}),
	)
}
