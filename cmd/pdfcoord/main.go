// Command pdfcoord shows a PDF and reports the document coordinate under the
// pointer in centimetres.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
)

func main() {
	opts := control.DefaultOptions()
	flag.Float64Var(&opts.Zoom, "zoom", opts.Zoom, "initial zoom level")
	flag.IntVar(&opts.Page, "page", 0, "page shown after loading (0 = first)")
	flag.BoolVar(&opts.AutoCopy, "autocopy", false, "copy the coordinate on click")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(*level)}))
	logging.SetLogger(logger)
	gg.SetLogger(logger)

	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	var initial *doc.Source
	if flag.NArg() > 0 {
		src, err := doc.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("open %s: %v", flag.Arg(0), err)
		}
		initial = &src
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("PDF Coordinate Picker"),
			app.Size(unit.Dp(1100), unit.Dp(900)),
		)

		application := vis.NewApp(opts, initial)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
