package doc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// pdfMagic is the header every PDF file starts with (possibly after a few
// bytes of garbage, which readers tolerate within the first KiB).
var pdfMagic = []byte("%PDF-")

// ErrCancelled is returned by Pick when the user dismisses the dialog.
var ErrCancelled = errors.New("file selection cancelled")

// Source is a raw byte buffer delivered by the file-acquisition layer.
type Source struct {
	Name string
	Data []byte
}

// IsPDF reports whether data carries a PDF header in its first KiB.
func IsPDF(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, pdfMagic)
}

// ReadFile loads a source from disk. Files without a .pdf extension or a PDF
// header are rejected with ErrNotDocument.
func ReadFile(path string) (Source, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return Source{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotDocument)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	if !IsPDF(data) {
		return Source{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotDocument)
	}
	return Source{Name: filepath.Base(path), Data: data}, nil
}

// Pick shows the native file picker filtered to PDF files and loads the
// selection. It blocks until the dialog closes and must not run on the UI
// event loop.
func Pick() (Source, error) {
	path, err := dialog.File().Title("Open PDF").Filter("PDF documents", "pdf").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return Source{}, ErrCancelled
	}
	if err != nil {
		return Source{}, err
	}
	return ReadFile(filepath.Clean(path))
}
