package control

import (
	"fmt"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

// Options configures a Controller.
type Options struct {
	// Steps are the selectable zoom levels.
	Steps core.ZoomSteps
	// Zoom is the initial scale; it must be one of Steps.
	Zoom float64
	// Page is the page shown after the first load. 0 means the first page.
	Page int
	// AutoCopy copies the coordinate on click.
	AutoCopy bool
}

// DefaultOptions returns the viewer defaults.
func DefaultOptions() Options {
	return Options{
		Steps: core.DefaultZoomSteps,
		Zoom:  core.DefaultZoom,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if err := o.Steps.Validate(); err != nil {
		return err
	}
	if !o.Steps.Contains(o.Zoom) {
		return fmt.Errorf("zoom %v is not one of %v", o.Zoom, []float64(o.Steps))
	}
	if o.Page < 0 {
		return fmt.Errorf("page %d: must not be negative", o.Page)
	}
	return nil
}
