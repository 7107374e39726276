package doc

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
)

// letter is the fallback page size when no MediaBox can be resolved.
var letter = core.Size{Width: 612, Height: 792}

// Preview colours.
var (
	colorSheet = gg.RGB(1, 1, 1)
	colorText  = gg.RGB(0.12, 0.12, 0.14)
	colorRect  = gg.RGBA2(0.45, 0.5, 0.55, 0.6)
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func previewFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// PDFDecoder decodes PDF files with ledongthuc/pdf.
type PDFDecoder struct{}

// Decode parses data as a PDF file.
func (PDFDecoder) Decode(data []byte) (d Document, err error) {
	if !IsPDF(data) {
		return nil, ErrNotDocument
	}

	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, &DecodeError{Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	n := r.NumPage()
	if n < 1 {
		return nil, &DecodeError{Err: ErrNoPages}
	}

	doc := &pdfDocument{
		id:    uuid.NewString(),
		r:     r,
		count: n,
		faces: make(map[int]text.Face),
	}
	logging.Logger().Debug("pdf decoded", "doc", doc.id, "pages", n, "bytes", len(data))
	return doc, nil
}

type pdfDocument struct {
	id    string
	count int

	// mu serialises access to the reader, which caches parsed objects,
	// and to the face cache. Superseded renders may still be running.
	mu    sync.Mutex
	r     *pdf.Reader
	faces map[int]text.Face
}

func (d *pdfDocument) ID() string     { return d.id }
func (d *pdfDocument) PageCount() int { return d.count }

func (d *pdfDocument) Page(n int) (pg Page, err error) {
	if n < 1 || n > d.count {
		return nil, fmt.Errorf("page %d of %d: %w", n, d.count, ErrPageRange)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// resolving the page tree parses objects lazily, and the lexer panics
	// on malformed ones
	defer func() {
		if r := recover(); r != nil {
			pg, err = nil, &DecodeError{Err: fmt.Errorf("page %d: parser panic: %v", n, r)}
		}
	}()

	p := d.r.Page(n)
	if p.V.IsNull() {
		return nil, &DecodeError{Err: fmt.Errorf("page %d missing from page tree", n)}
	}
	llx, lly, urx, ury, ok := mediaBox(p.V)
	if !ok {
		logging.Logger().Warn("page has no usable MediaBox, assuming Letter", "doc", d.id, "page", n)
		llx, lly, urx, ury = 0, 0, letter.Width, letter.Height
	}
	return &pdfPage{doc: d, page: p, num: n, llx: llx, lly: lly, urx: urx, ury: ury}, nil
}

// face returns a cached preview face for the given pixel size.
// Callers hold d.mu.
func (d *pdfDocument) face(px float64) (text.Face, error) {
	key := int(math.Round(px * 4))
	if f, ok := d.faces[key]; ok {
		return f, nil
	}
	src, err := previewFont()
	if err != nil {
		return nil, err
	}
	f := src.Face(float64(key) / 4)
	d.faces[key] = f
	return f, nil
}

// mediaBox resolves the page's MediaBox, following inheritance via Parent.
func mediaBox(page pdf.Value) (llx, lly, urx, ury float64, ok bool) {
	for v, depth := page, 0; !v.IsNull() && depth < 32; v, depth = v.Key("Parent"), depth+1 {
		box := v.Key("MediaBox")
		if box.Kind() != pdf.Array || box.Len() != 4 {
			continue
		}
		a, b := box.Index(0).Float64(), box.Index(1).Float64()
		c, e := box.Index(2).Float64(), box.Index(3).Float64()
		llx, urx = math.Min(a, c), math.Max(a, c)
		lly, ury = math.Min(b, e), math.Max(b, e)
		if urx-llx <= 0 || ury-lly <= 0 {
			return 0, 0, 0, 0, false
		}
		return llx, lly, urx, ury, true
	}
	return 0, 0, 0, 0, false
}

type pdfPage struct {
	doc  *pdfDocument
	page pdf.Page
	num  int

	llx, lly, urx, ury float64
}

func (p *pdfPage) Size(scale float64) core.Size {
	return core.Size{Width: (p.urx - p.llx) * scale, Height: (p.ury - p.lly) * scale}
}

// Render draws a preview of the page: the sheet, the rectangles of the
// content stream and its text runs in Go Regular. Content that cannot be
// interpreted leaves a blank sheet.
func (p *pdfPage) Render(dc *gg.Context, scale float64) error {
	size := p.Size(scale)
	dc.SetColor(colorSheet.Color())
	dc.DrawRectangle(0, 0, size.Width, size.Height)
	if err := dc.Fill(); err != nil {
		return err
	}

	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()

	content, err := p.content()
	if err != nil {
		logging.Logger().Warn("page content unreadable", "doc", p.doc.id, "page", p.num, "err", err)
		return nil
	}

	dc.SetColor(colorRect.Color())
	dc.SetLineWidth(0.5)
	for _, r := range content.Rect {
		x0, y0 := p.toView(r.Min.X, r.Max.Y, scale)
		x1, y1 := p.toView(r.Max.X, r.Min.Y, scale)
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	// DrawString writes straight into the pixmap, so text positions and sizes
	// are mapped to device space by hand.
	device := dc.GetTransform().A
	dc.SetColor(colorText.Color())
	for _, t := range content.Text {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}
		face, err := p.doc.face(t.FontSize * scale * device)
		if err != nil {
			return err
		}
		dc.SetFont(face)
		x, y := dc.TransformPoint(p.toView(t.X, t.Y, scale))
		dc.DrawString(t.S, x, y)
	}
	return nil
}

func (p *pdfPage) content() (c pdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("content stream: %v", r)
		}
	}()
	return p.page.Content(), nil
}

// toView maps PDF user space (origin bottom-left) to page view space
// (origin top-left) at scale.
func (p *pdfPage) toView(x, y, scale float64) (float64, float64) {
	return (x - p.llx) * scale, (p.ury - y) * scale
}
