// Package control is the interaction dispatcher of the viewer. A Controller
// owns all viewer state and is driven from a single goroutine: input events,
// Poll and the accessors must not be called concurrently.
package control

import (
	"context"
	"errors"
	"fmt"

	"gioui.org/io/key"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/feedback"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/interact"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/observer"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/viewport"
)

// Deps are the collaborators of a Controller. Zero fields get defaults.
type Deps struct {
	// Decoder parses sources; defaults to doc.PDFDecoder.
	Decoder doc.Decoder
	// Clipboard writes copied text; defaults to the system clipboard.
	Clipboard feedback.WriteFunc
	// Picker asks the user for a file; defaults to doc.Pick.
	Picker func() (doc.Source, error)
	// Notify wakes the UI loop after background work; may be nil.
	Notify func()
	// Observer receives events in addition to the status model and log.
	Observer observer.Observer
}

type picked struct {
	src doc.Source
	err error
}

// Controller routes input to the viewer state and the renderer.
type Controller struct {
	st       *state.State
	renderer *viewport.Renderer
	copier   *feedback.Copier
	gesture  interact.Recognizer
	observer observer.Observer

	decoder doc.Decoder
	picker  func() (doc.Source, error)
	notify  func()
	picks   chan picked
	picking bool

	document    doc.Document
	source      doc.Source
	initialPage int
}

// New creates a controller. dpr is the device pixel ratio, fixed for the
// controller's lifetime.
func New(opts Options, dpr float64, deps Deps) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if deps.Decoder == nil {
		deps.Decoder = doc.PDFDecoder{}
	}
	if deps.Picker == nil {
		deps.Picker = doc.Pick
	}

	st := state.NewState(opts.Steps, opts.Zoom, dpr, opts.AutoCopy)
	obs := observer.Multi{observer.NewStatusObserver(st.Status), observer.LogObserver{}}
	if deps.Observer != nil {
		obs = append(obs, deps.Observer)
	}

	return &Controller{
		st:          st,
		renderer:    viewport.NewRenderer(deps.Notify),
		copier:      feedback.NewCopier(deps.Clipboard, deps.Notify),
		observer:    obs,
		decoder:     deps.Decoder,
		picker:      deps.Picker,
		notify:      deps.Notify,
		picks:       make(chan picked, 1),
		initialPage: opts.Page,
	}, nil
}

// Snapshot returns a copy of the viewer state.
func (c *Controller) Snapshot() state.Snapshot {
	return c.st.Snapshot()
}

// Renderer exposes the pixel buffers for painting.
func (c *Controller) Renderer() *viewport.Renderer {
	return c.renderer
}

// Loaded reports whether a document is loaded.
func (c *Controller) Loaded() bool {
	return c.document != nil
}

// Load replaces the current document with src and shows its first page.
// On failure the previous document and all state stay as they were.
func (c *Controller) Load(src doc.Source) error {
	return c.load(src, false)
}

// Reload decodes the current source again and keeps the page index.
func (c *Controller) Reload() error {
	if c.document == nil {
		return nil
	}
	return c.load(c.source, true)
}

func (c *Controller) load(src doc.Source, retain bool) error {
	if !doc.IsPDF(src.Data) {
		err := fmt.Errorf("%s: %w", src.Name, doc.ErrNotDocument)
		c.observer.OnError(err)
		return err
	}

	d, err := c.decoder.Decode(src.Data)
	if err == nil {
		// A document whose first shown page cannot be resolved is rejected
		// before any state changes.
		_, err = d.Page(c.landingPage(d.PageCount(), retain))
	}
	if err != nil {
		var de *doc.DecodeError
		if errors.As(err, &de) && de.Name == "" {
			de.Name = src.Name
		}
		c.observer.OnError(err)
		return err
	}

	c.document, c.source = d, src
	c.st.Pages.Reset(d.PageCount(), retain)
	if !retain && c.initialPage > 0 {
		c.st.Pages.GoTo(c.initialPage)
		c.initialPage = 0
	}
	if !retain {
		c.st.Scroll.Reset()
	}
	c.observer.OnDocumentLoaded(src.Name, d.PageCount(), retain)
	c.render()
	return nil
}

// landingPage is the page a load of a count-page document will show.
func (c *Controller) landingPage(count int, retain bool) int {
	n := 1
	switch {
	case retain && c.document != nil:
		n = c.st.Pages.Current()
	case !retain && c.initialPage > 0:
		n = c.initialPage
	}
	return max(1, min(n, count))
}

// Open shows the file picker in the background. The chosen file is loaded
// by a later Poll.
func (c *Controller) Open() {
	if c.picking {
		return
	}
	c.picking = true
	go func() {
		src, err := c.picker()
		c.picks <- picked{src: src, err: err}
		if c.notify != nil {
			c.notify()
		}
	}()
}

// Poll applies finished background work: render results and file picks.
// It never blocks and reports whether anything visible changed.
func (c *Controller) Poll() bool {
	changed := false
	for {
		select {
		case res := <-c.renderer.Results():
			if c.commit(res) {
				changed = true
			}
		case p := <-c.picks:
			c.picking = false
			c.applyPick(p)
			changed = true
		default:
			return changed
		}
	}
}

// Wait blocks until the latest render request has been committed.
func (c *Controller) Wait(ctx context.Context) error {
	for c.renderer.Pending() {
		select {
		case res := <-c.renderer.Results():
			c.commit(res)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *Controller) applyPick(p picked) {
	switch {
	case errors.Is(p.err, doc.ErrCancelled):
		logging.Logger().Debug("file selection cancelled")
	case p.err != nil:
		c.observer.OnError(p.err)
	default:
		_ = c.Load(p.src)
	}
}

func (c *Controller) commit(res viewport.Result) bool {
	applied, err := c.renderer.Commit(res)
	if !applied {
		return false
	}
	if err != nil {
		c.observer.OnError(err)
	}
	c.observer.OnPageShown(res.Page, res.Count)
	return true
}

// render requests the current page at the current scale. It reports
// whether the request was issued; on failure the error has been reported
// and the caller restores the page and scale the shown frame belongs to.
func (c *Controller) render() bool {
	if c.document == nil {
		return true
	}
	req, err := c.renderer.Request(c.document, c.st.Pages.Current(), c.st.Zoom.Scale(), c.st.DPR())
	if err != nil {
		c.observer.OnError(err)
		return false
	}
	c.st.SetViewport(req.Viewport)
	c.refreshOverlay()
	return true
}

// showPage renders after a page change and undoes the change on failure.
func (c *Controller) showPage(prev int) {
	if !c.render() {
		c.st.Pages.GoTo(prev)
	}
}

// showScale renders after a zoom change and undoes the change on failure.
func (c *Controller) showScale(prev float64) {
	if !c.render() {
		c.st.Zoom.SetScale(prev)
	}
}

func (c *Controller) refreshOverlay() {
	if pos, ok := c.st.Pointer.Position(); ok {
		c.renderer.SetCrosshair(pos)
		return
	}
	c.renderer.ClearOverlay()
}

// GoTo shows page n, clamped to the document.
func (c *Controller) GoTo(n int) {
	prev := c.st.Pages.Current()
	if c.st.Pages.GoTo(n) {
		c.showPage(prev)
	}
}

// NextPage shows the next page; no-op on the last page.
func (c *Controller) NextPage() {
	prev := c.st.Pages.Current()
	if c.st.Pages.Next() {
		c.showPage(prev)
	}
}

// PreviousPage shows the previous page; no-op on the first page.
func (c *Controller) PreviousPage() {
	prev := c.st.Pages.Current()
	if c.st.Pages.Previous() {
		c.showPage(prev)
	}
}

// ZoomIn steps to the next zoom level.
func (c *Controller) ZoomIn() {
	prev := c.st.Zoom.Scale()
	if c.st.Zoom.StepUp() {
		c.showScale(prev)
	}
}

// ZoomOut steps to the previous zoom level.
func (c *Controller) ZoomOut() {
	prev := c.st.Zoom.Scale()
	if c.st.Zoom.StepDown() {
		c.showScale(prev)
	}
}

// SetScale sets any positive scale, e.g. a zoom level picked in the toolbar.
func (c *Controller) SetScale(v float64) {
	prev := c.st.Zoom.Scale()
	if c.st.Zoom.SetScale(v) {
		c.showScale(prev)
	}
}

// SetHelp shows or hides the help overlay.
func (c *Controller) SetHelp(open bool) {
	c.st.SetHelp(open)
}

// SetAutoCopy toggles copy-on-click.
func (c *Controller) SetAutoCopy(on bool) {
	c.st.SetAutoCopy(on)
}

// SetView records the size of the visible canvas area in CSS pixels.
func (c *Controller) SetView(view core.Size) {
	c.st.Scroll.SetExtent(c.st.Viewport().CSS, view)
}

// Key handles a key press and reports whether it was consumed.
func (c *Controller) Key(name key.Name, mods key.Modifiers) bool {
	cmd := interact.Route(name, mods, c.st.HelpOpen())
	switch cmd.Kind {
	case interact.CmdNone:
		return false
	case interact.CmdCloseHelp:
		c.st.SetHelp(false)
	case interact.CmdScroll:
		c.st.Scroll.By(cmd.DX, cmd.DY)
	case interact.CmdScrollPage:
		c.st.Scroll.By(0, cmd.DY*c.st.Scroll.PageStep())
	case interact.CmdNudge:
		c.nudge(cmd.DX, cmd.DY)
	case interact.CmdPreviousPage:
		c.PreviousPage()
	case interact.CmdNextPage:
		c.NextPage()
	case interact.CmdZoomIn:
		c.ZoomIn()
	case interact.CmdZoomOut:
		c.ZoomOut()
	case interact.CmdReload:
		_ = c.Reload()
	case interact.CmdOpenHelp:
		c.st.SetHelp(true)
	case interact.CmdOpen:
		c.Open()
	}
	return true
}

func (c *Controller) nudge(dx, dy float64) {
	if c.document == nil {
		return
	}
	pos := c.st.Pointer.Nudge(dx, dy, c.st.Viewport().CSS)
	c.renderer.SetCrosshair(pos)
}

// PointerMove handles a pointer position in CSS pixels relative to the
// page's top-left corner.
func (c *Controller) PointerMove(p core.Point) {
	if c.document == nil {
		return
	}
	pos := c.st.Pointer.Move(p, c.st.Viewport().CSS)
	c.renderer.SetCrosshair(pos)
}

// PointerLeave clears the overlay and hides the tooltip.
func (c *Controller) PointerLeave() {
	c.st.Pointer.Clear()
	c.renderer.ClearOverlay()
}

// Click copies the coordinate under the pointer when auto-copy is on.
func (c *Controller) Click() {
	if !c.st.AutoCopy() {
		return
	}
	coord, ok := c.st.Coordinate()
	if !ok {
		return
	}
	c.observer.OnCopied(c.copier.Copy(coord))
}

// Wheel handles a wheel scroll. With ctrl it zooms like a pinch step.
func (c *Controller) Wheel(dy float64, ctrl bool) {
	if ctrl {
		c.apply(interact.WheelIntent(dy))
		return
	}
	c.st.Scroll.By(0, dy)
}

// TouchStart starts a gesture with the active touches.
func (c *Controller) TouchStart(touches []interact.Touch) {
	c.gesture.Start(touches)
}

// TouchMove handles moving touches and reports whether the platform's
// default handling must be suppressed.
func (c *Controller) TouchMove(touches []interact.Touch) bool {
	in, suppress := c.gesture.Move(touches)
	c.apply(in)
	return suppress
}

// TouchEnd ends the gesture; changed holds the lifted touches. A tap on
// the page moves the pointer there and clicks.
func (c *Controller) TouchEnd(changed []interact.Touch) {
	in := c.gesture.End(changed)
	if in == interact.IntentTap && c.onPage(changed[0].Pos) {
		c.PointerMove(changed[0].Pos)
		c.Click()
	}
	c.apply(in)
}

// TouchCancel abandons the gesture.
func (c *Controller) TouchCancel() {
	c.gesture.Cancel()
}

func (c *Controller) onPage(p core.Point) bool {
	if c.document == nil {
		return false
	}
	css := c.st.Viewport().CSS
	return p.X >= 0 && p.Y >= 0 && p.X <= css.Width && p.Y <= css.Height
}

func (c *Controller) apply(in interact.Intent) {
	if in != interact.IntentNone {
		logging.Logger().Debug("gesture", "intent", in.String())
	}
	switch in {
	case interact.IntentPreviousPage:
		c.PreviousPage()
	case interact.IntentNextPage:
		c.NextPage()
	case interact.IntentZoomIn, interact.IntentZoomOut:
		c.SetScale(interact.ApplyZoom(c.st.Zoom.Scale(), in))
	}
}

// Tooltip returns the tooltip text and whether the tooltip is visible. The
// text is the coordinate, or the copy acknowledgement while it is shown.
func (c *Controller) Tooltip() (string, bool) {
	coord, ok := c.st.Coordinate()
	if !ok {
		return "", false
	}
	if ack := c.copier.Ack(); ack != feedback.AckNone {
		return ack.String(), true
	}
	return core.FormatCM(coord), true
}

// Close stops pending timers.
func (c *Controller) Close() {
	c.copier.Stop()
}
