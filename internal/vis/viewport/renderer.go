// Package viewport owns the two aligned pixel buffers of the page canvas and
// drives page rasterization.
//
// Every render request carries a generation number. Rasterization happens on
// a worker goroutine into a private buffer; the result is committed into the
// content buffer on the UI goroutine only when its generation is still the
// latest one issued. Superseded results are dropped.
package viewport

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/draw"
)

// Request describes one render.
type Request struct {
	Gen      uint64
	DocID    string
	Page     int
	Count    int
	Scale    float64
	DPR      float64
	Viewport core.Viewport
}

// Result is a finished rasterization.
type Result struct {
	Request
	Image image.Image
	Err   error
}

// Renderer manages the content and overlay buffers.
type Renderer struct {
	content *gg.Context
	overlay *gg.Context

	results chan Result
	notify  func()

	latest Request
	shown  Request
	frame  image.Image
	over   image.Image
	dirty  bool
}

// NewRenderer creates a renderer with 1x1 buffers. notify, if not nil, is
// called from the worker goroutine after a result has been posted; the UI
// uses it to wake its event loop.
func NewRenderer(notify func()) *Renderer {
	return &Renderer{
		content: gg.NewContext(1, 1),
		overlay: gg.NewContext(1, 1),
		results: make(chan Result, 16),
		notify:  notify,
	}
}

// Results delivers finished renders. Each one must be passed to Commit on the
// UI goroutine.
func (r *Renderer) Results() <-chan Result {
	return r.results
}

// Request starts rendering page n of d at scale. Both buffers are resized to
// the new viewport before the worker starts, so any pending older result no
// longer matches them.
func (r *Renderer) Request(d doc.Document, n int, scale, dpr float64) (Request, error) {
	page, err := d.Page(n)
	if err != nil {
		return Request{}, err
	}
	vp := core.NewViewport(page.Size(1), scale, dpr)
	w, h := vp.BufferPixels()
	if err := r.content.Resize(w, h); err != nil {
		return Request{}, err
	}
	if err := r.overlay.Resize(w, h); err != nil {
		return Request{}, err
	}
	r.content.Clear()
	r.overlay.Clear()
	r.over = nil

	req := Request{
		Gen:      r.latest.Gen + 1,
		DocID:    d.ID(),
		Page:     n,
		Count:    d.PageCount(),
		Scale:    scale,
		DPR:      dpr,
		Viewport: vp,
	}
	r.latest = req
	logging.Logger().Debug("viewport: render requested",
		"gen", req.Gen, "doc", req.DocID, "page", n, "scale", scale, "w", w, "h", h)

	go r.rasterize(req, page, w, h)
	return req, nil
}

func (r *Renderer) rasterize(req Request, page doc.Page, w, h int) {
	res := Result{Request: req}
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("render page %d: %v", req.Page, p)
		}
		r.results <- res
		if r.notify != nil {
			r.notify()
		}
	}()

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.Push()
	dc.Scale(req.DPR, req.DPR)
	res.Err = page.Render(dc, req.Scale)
	dc.Pop()
	dc.Identity()

	if err := dc.FlushGPU(); err != nil && res.Err == nil {
		res.Err = err
	}
	res.Image = dc.Image()
}

// Commit applies a finished render if it is the latest request. It reports
// whether the content buffer was updated; a stale result is dropped silently.
// A render error is returned alongside whatever the page drew before failing.
func (r *Renderer) Commit(res Result) (bool, error) {
	if res.Gen != r.latest.Gen {
		logging.Logger().Debug("viewport: stale render dropped",
			"gen", res.Gen, "latest", r.latest.Gen, "page", res.Page)
		return false, nil
	}
	r.content.Clear()
	if res.Image != nil {
		r.content.DrawImage(gg.ImageBufFromImage(res.Image), 0, 0)
	}
	r.shown = res.Request
	r.frame = snapshot(r.content)
	return true, res.Err
}

// Latest returns the most recently issued request.
func (r *Renderer) Latest() Request {
	return r.latest
}

// Shown returns the request whose pixels are in the content buffer.
func (r *Renderer) Shown() (Request, bool) {
	return r.shown, r.shown.Gen != 0 && r.shown.Gen == r.latest.Gen
}

// Pending reports whether the latest request has not been committed yet.
func (r *Renderer) Pending() bool {
	return r.latest.Gen != 0 && r.shown.Gen != r.latest.Gen
}

// Frame returns the committed page image, or nil while the latest request is
// pending.
func (r *Renderer) Frame() image.Image {
	if r.Pending() {
		return nil
	}
	return r.frame
}

// Content returns the content buffer.
func (r *Renderer) Content() *gg.Context {
	return r.content
}

// Overlay returns the overlay buffer.
func (r *Renderer) Overlay() *gg.Context {
	return r.overlay
}

// SetCrosshair redraws the overlay with the crosshair at p (CSS pixels).
func (r *Renderer) SetCrosshair(p core.Point) {
	if r.latest.Gen == 0 {
		return
	}
	draw.Crosshair(r.overlay, p, r.latest.Viewport.CSS, r.latest.DPR)
	r.dirty = true
}

// ClearOverlay removes the crosshair.
func (r *Renderer) ClearOverlay() {
	draw.ClearOverlay(r.overlay)
	r.over = nil
	r.dirty = false
}

// OverlayImage returns the overlay pixels, or nil when the overlay is empty.
func (r *Renderer) OverlayImage() image.Image {
	if r.dirty {
		r.over = snapshot(r.overlay)
		r.dirty = false
	}
	return r.over
}

// snapshot copies the pixels of dc once pending GPU work has landed.
func snapshot(dc *gg.Context) image.Image {
	if err := dc.FlushGPU(); err != nil {
		logging.Logger().Warn("viewport: gpu flush failed", "err", err)
	}
	return dc.Image()
}
