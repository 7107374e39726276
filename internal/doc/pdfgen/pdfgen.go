// Package pdfgen writes small uncompressed PDF files with a classic xref
// table. It is used to build test fixtures and sample documents.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"
)

// Box is a PDF rectangle: llx, lly, urx, ury in document units.
type Box [4]float64

// Text is a run of Helvetica text with its baseline origin at X, Y.
type Text struct {
	X, Y float64
	Size float64
	S    string
}

// Page is one generated page.
type Page struct {
	// MediaBox is nil to inherit the box of the page tree.
	MediaBox *Box
	Rects    []Box
	Texts    []Text
}

// Content returns the page's content stream, or "" for a blank page.
func (p Page) Content() string {
	var b strings.Builder
	for _, r := range p.Rects {
		fmt.Fprintf(&b, "%g %g %g %g re S\n", r[0], r[1], r[2]-r[0], r[3]-r[1])
	}
	for _, t := range p.Texts {
		fmt.Fprintf(&b, "BT /F1 %g Tf %g %g Td (%s) Tj ET\n", t.Size, t.X, t.Y, escape(t.S))
	}
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// Build writes a document with the given pages. inherited, if not nil,
// becomes the MediaBox of the page tree.
func Build(inherited *Box, pages ...Page) []byte {
	// Objects 1-3 are the catalog, the page tree and the font. Each page
	// takes one object plus one for a non-empty content stream.
	next := 4
	pageNum := make([]int, len(pages))
	contentNum := make([]int, len(pages))
	for i, p := range pages {
		pageNum[i] = next
		next++
		if p.Content() != "" {
			contentNum[i] = next
			next++
		}
	}

	objs := make([]string, next-1)
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageNum[i])
	}
	treeBox := ""
	if inherited != nil {
		treeBox = " /MediaBox " + inherited.String()
	}
	objs[0] = "<< /Type /Catalog /Pages 2 0 R >>"
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d%s >>", strings.Join(kids, " "), len(pages), treeBox)
	objs[2] = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"

	for i, p := range pages {
		dict := "<< /Type /Page /Parent 2 0 R"
		if p.MediaBox != nil {
			dict += " /MediaBox " + p.MediaBox.String()
		}
		if content := p.Content(); content != "" {
			dict += fmt.Sprintf(" /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R", contentNum[i])
			objs[contentNum[i]-1] = fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content)
		}
		objs[pageNum[i]-1] = dict + " >>"
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func (b Box) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b[0], b[1], b[2], b[3])
}
