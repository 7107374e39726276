// Package main checks generated samples against the viewer. For every mark
// in a sample manifest it pages the headless controller to the mark, points
// at it at every zoom level and compares the reported coordinate with the
// manifest. Results go to a CSV file with a per-zoom summary on stdout.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/doc"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/control"
	"github.com/elektrokombinacija/pdfcoord/internal/vis/state"
)

// SampleFile is a manifest written by gen_samples.
type SampleFile struct {
	Name  string `json:"name"`
	Marks []struct {
		Page  int     `json:"page"`
		Label string  `json:"label"`
		XCM   float64 `json:"x_cm"`
		YCM   float64 `json:"y_cm"`
	} `json:"marks"`
}

// CheckResult stores the outcome for one mark at one zoom level.
type CheckResult struct {
	Timestamp  string
	CommitHash string
	GoVersion  string
	OS         string
	Arch       string
	Sample     string
	Page       int
	Mark       string
	Zoom       float64
	RenderMs   float64
	Want       string
	Got        string
	Success    bool
}

// ZoomMetrics holds per-zoom aggregated metrics.
type ZoomMetrics struct {
	Zoom          float64
	TotalRuns     int
	Successes     int
	TotalRenderMs float64
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func loadSample(path string) (*SampleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s SampleFile
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// checkSample runs every mark of s through a fresh controller per zoom level.
func checkSample(s *SampleFile, src doc.Source, dpr float64, timeout time.Duration) ([]*CheckResult, error) {
	commit := getGitCommit()
	var results []*CheckResult

	for _, zoom := range core.DefaultZoomSteps {
		opts := control.DefaultOptions()
		opts.Zoom = zoom
		ctrl, err := control.New(opts, dpr, control.Deps{
			Clipboard: func(string) error { return nil },
		})
		if err != nil {
			return nil, err
		}

		if err := ctrl.Load(src); err != nil {
			ctrl.Close()
			return nil, err
		}

		for _, m := range s.Marks {
			ctrl.GoTo(m.Page)
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			start := time.Now()
			err := ctrl.Wait(ctx)
			cancel()

			want := core.FormatCM(core.Point{X: m.XCM, Y: m.YCM})
			r := &CheckResult{
				Timestamp:  time.Now().UTC().Format(time.RFC3339),
				CommitHash: commit,
				GoVersion:  runtime.Version(),
				OS:         runtime.GOOS,
				Arch:       runtime.GOARCH,
				Sample:     s.Name,
				Page:       m.Page,
				Mark:       m.Label,
				Zoom:       zoom,
				RenderMs:   float64(time.Since(start).Microseconds()) / 1000.0,
				Want:       want,
			}
			if err == nil {
				ctrl.PointerMove(core.ToPixels(core.Point{X: m.XCM, Y: m.YCM}, zoom))
				snap := ctrl.Snapshot()
				r.Got = core.FormatCM(snap.Coord)
				r.Success = snap.Page == m.Page && r.Got == want
			}
			results = append(results, r)
		}
		ctrl.Close()
	}

	return results, nil
}

func writeCSV(results []*CheckResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Header
	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"sample", "page", "mark", "zoom", "render_ms", "want", "got", "success",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Data rows
	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Sample, fmt.Sprintf("%d", r.Page), r.Mark, state.ZoomLabel(r.Zoom),
			fmt.Sprintf("%.3f", r.RenderMs), r.Want, r.Got, fmt.Sprintf("%t", r.Success),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(results []*CheckResult) {
	// Aggregate by zoom level
	metrics := make(map[float64]*ZoomMetrics)
	for _, r := range results {
		m, ok := metrics[r.Zoom]
		if !ok {
			m = &ZoomMetrics{Zoom: r.Zoom}
			metrics[r.Zoom] = m
		}
		m.TotalRuns++
		m.TotalRenderMs += r.RenderMs
		if r.Success {
			m.Successes++
		}
	}

	// Print summary table
	fmt.Println("\n=== SAMPLE CHECK SUMMARY ===")
	fmt.Printf("%-8s %8s %8s %14s\n", "Zoom", "Marks", "Match", "Avg Render(ms)")
	fmt.Println(strings.Repeat("-", 42))

	var zooms []float64
	for z := range metrics {
		zooms = append(zooms, z)
	}
	sort.Float64s(zooms)

	for _, z := range zooms {
		m := metrics[z]
		fmt.Printf("%-8s %8d %8d %14.2f\n",
			state.ZoomLabel(m.Zoom), m.TotalRuns, m.Successes, m.TotalRenderMs/float64(m.TotalRuns))
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing sample PDF and JSON files")
	outputFile := flag.String("output", "evidence/sample_check.csv", "Output CSV file")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout per page render")
	dpr := flag.Float64("dpr", 1, "Device pixel ratio")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	// Create output directory
	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Find sample manifests
	pattern := filepath.Join(*inputDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding sample files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No sample files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_samples first: go run ./tools/gen_samples -output testdata\n")
		os.Exit(1)
	}

	var results []*CheckResult
	failed := 0
	for _, file := range files {
		s, err := loadSample(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}
		src, err := doc.ReadFile(strings.TrimSuffix(file, ".json") + ".pdf")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", s.Name, err)
			continue
		}

		fmt.Printf("Checking %s: %d marks x %d zoom levels\n", s.Name, len(s.Marks), len(core.DefaultZoomSteps))
		rs, err := checkSample(s, src, *dpr, *timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error checking %s: %v\n", s.Name, err)
			continue
		}
		for _, r := range rs {
			if !r.Success {
				failed++
				if *verbose {
					fmt.Printf("  MISMATCH page %d %s at %s: got %s, want %s\n",
						r.Page, r.Mark, state.ZoomLabel(r.Zoom), r.Got, r.Want)
				}
			}
		}
		results = append(results, rs...)
	}

	// Write results
	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)

	// Print summary
	printSummary(results)
	if failed > 0 {
		os.Exit(1)
	}
}
