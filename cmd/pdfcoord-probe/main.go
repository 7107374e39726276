// Command pdfcoord-probe renders one page without a window and prints the
// coordinate of a point on it. It exercises the same controller as the
// viewer and can save the page with its crosshair as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

func main() {
	opts := control.DefaultOptions()
	flag.IntVar(&opts.Page, "page", 0, "page to render (0 = first)")
	flag.Float64Var(&opts.Zoom, "zoom", opts.Zoom, "zoom level")
	dpr := flag.Float64("dpr", 1, "device pixel ratio")
	x := flag.Float64("x", 0, "pointer x in CSS pixels from the page's left edge")
	y := flag.Float64("y", 0, "pointer y in CSS pixels from the page's top edge")
	out := flag.String("png", "", "write the page and crosshair to this PNG file")
	timeout := flag.Duration("timeout", 30*time.Second, "render timeout")
	level := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(*level)}))
	logging.SetLogger(logger)
	gg.SetLogger(logger)

	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s [options] input.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), opts, *dpr, core.Point{X: *x, Y: *y}, *out, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts control.Options, dpr float64, at core.Point, out string, timeout time.Duration) error {
	src, err := doc.ReadFile(path)
	if err != nil {
		return err
	}

	ctrl, err := control.New(opts, dpr, control.Deps{
		Clipboard: func(string) error { return nil },
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Load(src); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := ctrl.Wait(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	ctrl.PointerMove(at)
	snap := ctrl.Snapshot()
	fmt.Printf("%s  %s  %s\n", snap.Status.PageLabel, state.ZoomLabel(snap.Scale), core.FormatCM(snap.Coord))

	if out == "" {
		return nil
	}
	return savePNG(ctrl, out)
}

// savePNG composites the page and its overlay onto white.
func savePNG(ctrl *control.Controller, path string) error {
	r := ctrl.Renderer()
	w, h := r.Latest().Viewport.BufferPixels()

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	if frame := r.Frame(); frame != nil {
		dc.DrawImage(gg.ImageBufFromImage(frame), 0, 0)
	}
	if over := r.OverlayImage(); over != nil {
		dc.DrawImage(gg.ImageBufFromImage(over), 0, 0)
	}
	if err := dc.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("Saved %s (%dx%d)\n", path, w, h)
	return nil
}
