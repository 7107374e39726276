// Package main writes sample PDF documents for trying out the viewer.
// Every page carries a centimetre ruler and labelled marks at known
// positions so that the coordinates read off the viewer can be checked by
// eye. Generation is deterministic for a given seed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc/pdfgen"
)

// SampleParams defines parameters for sample generation.
type SampleParams struct {
	Seed      int64 `json:"seed"`
	PageCount int   `json:"page_count"`
	Marks     int   `json:"marks"` // Labelled marks per page
}

// Mark is a labelled point on a page, in centimetres from the top-left
// corner as the viewer reports it.
type Mark struct {
	Page  int     `json:"page"`
	Label string  `json:"label"`
	XCM   float64 `json:"x_cm"`
	YCM   float64 `json:"y_cm"`
}

// Sample describes one generated document.
type Sample struct {
	Name      string       `json:"name"`
	Params    SampleParams `json:"params"`
	Sizes     []string     `json:"sizes"`
	Marks     []Mark       `json:"marks"`
	Generated string       `json:"generated"`
}

// Page formats in document units.
var formats = []struct {
	name string
	box  pdfgen.Box
}{
	{"A4", pdfgen.Box{0, 0, 595, 842}},
	{"Letter", pdfgen.Box{0, 0, 612, 792}},
	{"A5 landscape", pdfgen.Box{0, 0, 595, 420}},
	{"Legal", pdfgen.Box{0, 0, 612, 1008}},
}

const cm = 1 / core.UnitToCM

// generateSample builds a document and its manifest entry.
func generateSample(params SampleParams) (*Sample, []byte) {
	rng := rand.New(rand.NewSource(params.Seed))

	s := &Sample{
		Name:      fmt.Sprintf("sample_%dp_%d", params.PageCount, params.Seed),
		Params:    params,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	pages := make([]pdfgen.Page, params.PageCount)
	for i := range pages {
		f := formats[rng.Intn(len(formats))]
		box := f.box
		s.Sizes = append(s.Sizes, f.name)

		page := pdfgen.Page{MediaBox: &box}
		page.Texts = append(page.Texts, pdfgen.Text{
			X: 1 * cm, Y: box[3] - 1.5*cm, Size: 14,
			S: fmt.Sprintf("Page %d (%s)", i+1, f.name),
		})

		// Ruler along the top edge, one tick per centimetre
		for x := 0.0; x+cm <= box[2]; x += cm {
			h := 0.25 * cm
			if int(x/cm+0.5)%5 == 0 {
				h = 0.5 * cm
			}
			page.Rects = append(page.Rects, pdfgen.Box{x, box[3] - h, x + cm, box[3]})
		}

		for m := 0; m < params.Marks; m++ {
			// Marks sit on a 0.5cm grid away from the edges
			xcm := 2 + float64(rng.Intn(int((box[2]/cm-4)*2)))/2
			ycm := 3 + float64(rng.Intn(int((box[3]/cm-5)*2)))/2
			x, y := xcm*cm, box[3]-ycm*cm

			label := fmt.Sprintf("M%d", m+1)
			page.Rects = append(page.Rects, pdfgen.Box{x - 0.1*cm, y - 0.1*cm, x + 0.1*cm, y + 0.1*cm})
			page.Texts = append(page.Texts, pdfgen.Text{
				X: x + 0.2*cm, Y: y - 0.1*cm, Size: 9,
				S: fmt.Sprintf("%s %s", label, core.FormatCM(core.Point{X: xcm, Y: ycm})),
			})
			s.Marks = append(s.Marks, Mark{Page: i + 1, Label: label, XCM: xcm, YCM: ycm})
		}
		pages[i] = page
	}

	return s, pdfgen.Build(nil, pages...)
}

func main() {
	// Parse flags
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	pageCount := flag.Int("pages", 5, "Number of pages")
	marks := flag.Int("marks", 6, "Labelled marks per page")
	count := flag.Int("count", 1, "Number of documents (seeds seed..seed+count-1)")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if *pageCount < 1 {
		fmt.Fprintln(os.Stderr, "Error: -pages must be at least 1")
		os.Exit(1)
	}

	// Create output directory
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := SampleParams{
			Seed:      *seed + int64(i),
			PageCount: *pageCount,
			Marks:     *marks,
		}
		sample, data := generateSample(params)

		pdfPath := filepath.Join(*outputDir, sample.Name+".pdf")
		if err := os.WriteFile(pdfPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", pdfPath, err)
			os.Exit(1)
		}

		manifest, err := json.MarshalIndent(sample, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling %s: %v\n", sample.Name, err)
			os.Exit(1)
		}
		jsonPath := filepath.Join(*outputDir, sample.Name+".json")
		if err := os.WriteFile(jsonPath, manifest, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", jsonPath, err)
			os.Exit(1)
		}

		fmt.Printf("Generated %s: %d pages, %d marks\n", pdfPath, len(sample.Sizes), len(sample.Marks))
	}
}
