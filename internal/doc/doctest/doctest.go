// Package doctest provides an in-memory doc.Document for tests.
package doctest

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc"
)

// Document is a fake document. Page n renders as a solid fill of Color(n).
// A page can be held back with Hold until Release is called, which lets
// tests control the order in which renders finish.
type Document struct {
	Name  string
	Sizes []core.Size

	mu     sync.Mutex
	gates  map[int]chan struct{}
	broken map[int]error
}

// New creates a document with one page per size.
func New(name string, sizes ...core.Size) *Document {
	return &Document{
		Name:   name,
		Sizes:  sizes,
		gates:  make(map[int]chan struct{}),
		broken: make(map[int]error),
	}
}

// Pages creates a document of count letter-sized pages.
func Pages(name string, count int) *Document {
	sizes := make([]core.Size, count)
	for i := range sizes {
		sizes[i] = core.Size{Width: 612, Height: 792}
	}
	return New(name, sizes...)
}

// Color is the fill of page n.
func Color(n int) gg.RGBA {
	return gg.RGB(float64(n%10)/10, 0.5, 1-float64(n%10)/10)
}

// Hold makes renders of page n block until Release(n).
func (d *Document) Hold(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gates[n] = make(chan struct{})
}

// Release unblocks renders of page n.
func (d *Document) Release(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if g, ok := d.gates[n]; ok {
		close(g)
		delete(d.gates, n)
	}
}

// Fail makes Page(n) return err. A nil err repairs the page.
func (d *Document) Fail(n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.broken, n)
		return
	}
	d.broken[n] = err
}

func (d *Document) gate(n int) chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gates[n]
}

// ID returns the document name.
func (d *Document) ID() string { return d.Name }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Sizes) }

// Page returns page n.
func (d *Document) Page(n int) (doc.Page, error) {
	if n < 1 || n > len(d.Sizes) {
		return nil, fmt.Errorf("page %d of %d: %w", n, len(d.Sizes), doc.ErrPageRange)
	}
	d.mu.Lock()
	err := d.broken[n]
	d.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &page{doc: d, n: n}, nil
}

type page struct {
	doc *Document
	n   int
}

func (p *page) Size(scale float64) core.Size {
	return p.doc.Sizes[p.n-1].Scale(scale)
}

func (p *page) Render(dc *gg.Context, scale float64) error {
	if g := p.doc.gate(p.n); g != nil {
		<-g
	}
	dc.ClearWithColor(Color(p.n))
	return nil
}

// Decoder returns a decoder that looks documents up by the bytes passed to
// Decode. Unknown input fails with a doc.DecodeError.
func Decoder(docs map[string]*Document) doc.Decoder {
	return doc.DecoderFunc(func(data []byte) (doc.Document, error) {
		d, ok := docs[string(data)]
		if !ok {
			return nil, &doc.DecodeError{Err: fmt.Errorf("unknown fixture %q", data)}
		}
		return d, nil
	})
}
