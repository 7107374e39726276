package pdfgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestBuildReadable(t *testing.T) {
	data := Build(&Box{0, 0, 612, 792},
		Page{},
		Page{
			MediaBox: &Box{0, 0, 200, 100},
			Rects:    []Box{{10, 10, 60, 40}},
			Texts:    []Text{{X: 20, Y: 50, Size: 12, S: "mark (a)"}},
		},
	)
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Fatalf("missing header: %q", data[:16])
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if got := r.NumPage(); got != 2 {
		t.Fatalf("NumPage() = %d, want 2", got)
	}

	c := r.Page(2).Content()
	if len(c.Rect) != 1 {
		t.Errorf("page 2 has %d rects, want 1", len(c.Rect))
	}
	var text strings.Builder
	for _, run := range c.Text {
		text.WriteString(run.S)
	}
	if got := text.String(); got != "mark (a)" {
		t.Errorf("page 2 text = %q, want %q", got, "mark (a)")
	}
}

func TestContent(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{Page{}, ""},
		{Page{Rects: []Box{{1, 2, 4, 8}}}, "1 2 3 6 re S\n"},
		{Page{Texts: []Text{{X: 5, Y: 6, Size: 10, S: `a\b`}}}, "BT /F1 10 Tf 5 6 Td (a\\\\b) Tj ET\n"},
	}

	for _, tt := range tests {
		if got := tt.page.Content(); got != tt.want {
			t.Errorf("Content(%+v) = %q, want %q", tt.page, got, tt.want)
		}
	}
}
