// Package observer delivers viewer notifications to the status model and
// the log.
package observer

import (
	"errors"

	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

// Observer is notified of controller events. All calls happen on the UI
// goroutine.
type Observer interface {
	// OnDocumentLoaded is called after a document has replaced the previous one.
	OnDocumentLoaded(name string, pages int, reload bool)

	// OnPageShown is called when a render has been committed.
	OnPageShown(page, count int)

	// OnError is called for rejected sources, decode and render failures.
	OnError(err error)

	// OnCopied is called when a coordinate has been handed to the clipboard.
	OnCopied(text string)
}

// StatusObserver adapts state.Status to the Observer interface.
type StatusObserver struct {
	status *state.Status
}

// NewStatusObserver creates a new observer backed by Status.
func NewStatusObserver(st *state.Status) *StatusObserver {
	return &StatusObserver{status: st}
}

// OnDocumentLoaded is called after a document has replaced the previous one.
func (o *StatusObserver) OnDocumentLoaded(name string, pages int, reload bool) {
	o.status.SetDocument(name)
	if reload {
		o.status.Notify(state.NoticeInfo, "Reloaded %s", name)
		return
	}
	o.status.ClearNotice()
}

// OnPageShown is called when a render has been committed.
func (o *StatusObserver) OnPageShown(page, count int) {
	o.status.SetPage(page, count)
}

// OnError is called for rejected sources, decode and render failures.
func (o *StatusObserver) OnError(err error) {
	o.status.Notify(state.NoticeError, "%s", Describe(err))
}

// OnCopied is called when a coordinate has been handed to the clipboard.
func (o *StatusObserver) OnCopied(text string) {}

// LogObserver writes events to the viewer log.
type LogObserver struct{}

func (LogObserver) OnDocumentLoaded(name string, pages int, reload bool) {
	logging.Logger().Info("document loaded", "name", name, "pages", pages, "reload", reload)
}

func (LogObserver) OnPageShown(page, count int) {
	logging.Logger().Debug("page shown", "page", page, "count", count)
}

func (LogObserver) OnError(err error) {
	var de *doc.DecodeError
	if errors.As(err, &de) {
		logging.Logger().Error("decode failed", "name", de.Name, "err", de.Err)
		return
	}
	logging.Logger().Warn("viewer error", "err", err)
}

func (LogObserver) OnCopied(text string) {
	logging.Logger().Debug("coordinate copied", "text", text)
}

// Multi fans events out to several observers in order.
type Multi []Observer

func (m Multi) OnDocumentLoaded(name string, pages int, reload bool) {
	for _, o := range m {
		o.OnDocumentLoaded(name, pages, reload)
	}
}

func (m Multi) OnPageShown(page, count int) {
	for _, o := range m {
		o.OnPageShown(page, count)
	}
}

func (m Multi) OnError(err error) {
	for _, o := range m {
		o.OnError(err)
	}
}

func (m Multi) OnCopied(text string) {
	for _, o := range m {
		o.OnCopied(text)
	}
}

// Describe turns an error into a short user-facing notice.
func Describe(err error) string {
	var de *doc.DecodeError
	switch {
	case errors.Is(err, doc.ErrNotDocument):
		return "Not a PDF file"
	case errors.As(err, &de):
		if de.Name != "" {
			return "Could not open " + de.Name
		}
		return "Could not open document"
	case errors.Is(err, doc.ErrPageRange):
		return "Page out of range"
	}
	return err.Error()
}
