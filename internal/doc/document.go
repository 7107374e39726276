// Package doc is the boundary to the document collaborator: decoding a raw
// byte buffer into pages, reporting their natural size and rasterizing them
// into a pixel buffer.
package doc

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

var (
	// ErrNotDocument is returned for sources that are not PDF files.
	ErrNotDocument = errors.New("not a PDF document")

	// ErrPageRange is returned by Document.Page for indices outside [1, PageCount].
	ErrPageRange = errors.New("page index out of range")

	// ErrNoPages is returned when a decoded document contains no pages.
	ErrNoPages = errors.New("document has no pages")
)

// DecodeError reports that a byte buffer could not be parsed.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("decode document: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Document is a decoded document. It is immutable once returned by a Decoder.
type Document interface {
	// ID identifies the decoded instance in logs.
	ID() string
	PageCount() int
	// Page returns page n, 1-based.
	Page(n int) (Page, error)
}

// Page is a single page of a Document.
type Page interface {
	// Size returns the page size in CSS pixels at the given scale.
	// Size(1) is the natural size in document units.
	Size(scale float64) core.Size
	// Render rasterizes the page at scale into dc. The caller sets up any
	// device transform on dc; Render must leave the transform as it found it.
	Render(dc *gg.Context, scale float64) error
}

// Decoder turns a raw byte buffer into a Document.
type Decoder interface {
	Decode(data []byte) (Document, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte) (Document, error)

// Decode calls f(data).
func (f DecoderFunc) Decode(data []byte) (Document, error) {
	return f(data)
}
